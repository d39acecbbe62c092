package dto

type SkillOutput struct {
	ID       string
	Name     string
	Level    int
	Category string
}
