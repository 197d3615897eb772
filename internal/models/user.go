package models

import "encoding/json"

// UserProfile is owned by the server and cached client-side only for the
// duration of a session.
type UserProfile struct {
	ID           string `json:"id"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	Nom          string `json:"nom"`
	Prenom       string `json:"prenom"`
	Telephone    string `json:"telephone"`
	Adresse      string `json:"adresse"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (u *UserProfile) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           idValue `json:"id"`
		MongoID      idValue `json:"_id"`
		Login        string  `json:"login"`
		Email        string  `json:"email"`
		Nom          string  `json:"nom"`
		Prenom       string  `json:"prenom"`
		Telephone    string  `json:"telephone"`
		Adresse      string  `json:"adresse"`
		ProfileImage string  `json:"profileImage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.ID = string(raw.ID)
	if u.ID == "" {
		u.ID = string(raw.MongoID)
	}
	u.Login = raw.Login
	u.Email = raw.Email
	u.Nom = raw.Nom
	u.Prenom = raw.Prenom
	u.Telephone = raw.Telephone
	u.Adresse = raw.Adresse
	u.ProfileImage = raw.ProfileImage
	return nil
}
