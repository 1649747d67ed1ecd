package models

// Skill is a named capability tag. Skills are created implicitly when a
// project references an unknown name and are never deleted through the API.
type Skill struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	Projects []Project `gorm:"many2many:project_skills" json:"-"`
}

// ProjectSkill is the join record between projects and skills. It has no
// lifecycle of its own: rows are replaced wholesale when a project's skill
// set changes and removed when the project is deleted.
type ProjectSkill struct {
	ProjectID uint `gorm:"primaryKey" json:"project_id"`
	SkillID   uint `gorm:"primaryKey" json:"skill_id"`
}

// SkillCount pairs a skill name with the number of distinct projects
// referencing it.
type SkillCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
