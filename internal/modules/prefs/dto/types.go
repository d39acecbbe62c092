package dto

type ThemeOutput struct {
	Name string
}
