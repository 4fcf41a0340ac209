package model

const UserTableName = "users"
const TeamTableName = "teams"
const TeamMemberTableName = "team_members"

// User 用户模型
type User struct {
	BaseModelWithSoftDelete
	Name        string     `gorm:"size:100;not null" json:"name"`
	Email       string     `gorm:"size:100;not null;index" json:"email"`
	Password    string     `gorm:"size:255;not null" json:"-"` // 不返回到前端
	Authorities StringList `gorm:"column:authorities;type:json" json:"authorities"`

	TeamMembers []TeamMember `gorm:"foreignKey:UserID;references:ID" json:"team_members,omitempty"`
}

func (User) TableName() string {
	return UserTableName
}

// Team 团队模型
type Team struct {
	BaseModelWithSoftDelete
	Name      string `gorm:"size:100;not null;index" json:"name"`
	ProjectID int64  `gorm:"not null;index" json:"project_id"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Team) TableName() string {
	return TeamTableName
}

// TeamMember 团队成员, (team_id, user_id) 活跃记录最多一条
// 再次加入时恢复历史记录而不是新建
type TeamMember struct {
	BaseModelWithSoftDelete

	TeamID int64 `gorm:"column:team_id;not null;index" json:"team_id"`
	UserID int64 `gorm:"column:user_id;not null;index" json:"user_id"`

	// Relations
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TeamMember) TableName() string {
	return TeamMemberTableName
}
