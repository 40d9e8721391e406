package dbmodels

type Department struct {
	BaseModel
	Name  string `gorm:"type:varchar(255)"`
	Code  string `gorm:"type:varchar(50)"`
	Areas []Area `gorm:"foreignKey:DepartmentID"`
}

type Area struct {
	BaseModel
	Name         string `gorm:"type:varchar(255)"`
	DepartmentID string `gorm:"type:varchar(36);index"`
	Department   *Department
	BossID       *string `gorm:"type:varchar(36)"`
	Boss         *Employee
}
