package domain

type Character struct {
	Model
	Name string `json:"name" db:"name"`
	Gold Money  `json:"gold" db:"-"`
}
