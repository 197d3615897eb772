package models

import "encoding/json"

// Product is the catalog entry as cached client-side. The backend has served
// both numeric ids and Mongo-style "_id" strings over time; both are folded
// into the single canonical ID during unmarshalling and "_id" is never
// re-emitted.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ProductDraft is the create/update payload. It intentionally carries no
// identifier field: the server disallows mutating ids.
type ProductDraft struct {
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       idValue `json:"id"`
		MongoID  idValue `json:"_id"`
		Name     string  `json:"name"`
		Code     string  `json:"code"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = string(raw.ID)
	if p.ID == "" {
		p.ID = string(raw.MongoID)
	}
	p.Name = raw.Name
	p.Code = raw.Code
	p.Quantity = raw.Quantity
	p.Price = raw.Price
	return nil
}

// idValue accepts either a JSON string or a JSON number identifier.
type idValue string

func (v *idValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = idValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = idValue(n.String())
	return nil
}
