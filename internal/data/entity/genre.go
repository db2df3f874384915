package entity

// Genre is a TMDb genre dictionary row.
type Genre struct {
	ID   int32  `db:"id"`
	Name string `db:"name"`
}
