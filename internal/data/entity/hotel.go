package entity

type Hotel struct {
	BaseSimple
	Name    string `db:"name"`
	Address string `db:"address"`
}
