package dto

// Stage is one column of the hiring pipeline board.
type Stage struct {
	ID         string
	Name       string
	Candidates []Record
}
