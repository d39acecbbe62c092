package dto

type DatumOutput struct {
	Date  string
	Count int
}

type LogInput struct {
	Type        string
	Description string
	Count       int
}
