package models

import "encoding/json"

// User is the account record as returned by the API. Fields besides ID are
// user-editable through the profile endpoints.
type User struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Birthday  *string `json:"birthday,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CreatedAt *string `json:"createdAt,omitempty"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

type userAlias User

// UnmarshalJSON accepts both id spellings: the profile endpoints key the
// record as "_id", the auth endpoints as "id". "_id" wins when both appear.
func (u *User) UnmarshalJSON(data []byte) error {
	var aux struct {
		userAlias
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*u = User(aux.userAlias)
	if u.ID == "" {
		u.ID = aux.AltID
	}
	return nil
}
