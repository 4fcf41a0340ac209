package repository

import (
	"gorm.io/gorm"

	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

type TeamMemberRepository interface {
	Create(member *model.TeamMember) error
	FindByID(id int64) (*model.TeamMember, error)
	// FindAnyByTeamAndUser 包含已软删除记录, 用于恢复去重
	FindAnyByTeamAndUser(teamID, userID int64) (*model.TeamMember, error)
	Restore(id int64) error
	ListByTeam(teamID int64) ([]*model.TeamMember, error)
	Delete(id int64) error
}

type teamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(member *model.TeamMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "添加团队成员失败", err)
	}
	return nil
}

func (r *teamMemberRepository) FindByID(id int64) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.Preload("User").First(&member, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "团队成员不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队成员失败", err)
	}
	return &member, nil
}

// FindAnyByTeamAndUser 查询(团队,用户)历史记录, 活跃或已删除均返回
func (r *teamMemberRepository) FindAnyByTeamAndUser(teamID, userID int64) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.Unscoped().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队成员失败", err)
	}
	return &member, nil
}

// Restore 清除墓碑, 恢复历史成员记录
func (r *teamMemberRepository) Restore(id int64) error {
	if err := r.db.Unscoped().
		Model(&model.TeamMember{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "恢复团队成员失败", err)
	}
	return nil
}

func (r *teamMemberRepository) ListByTeam(teamID int64) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	if err := r.db.Where("team_id = ?", teamID).
		Preload("User").
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队成员列表失败", err)
	}
	return members, nil
}

func (r *teamMemberRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.TeamMember{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "移除团队成员失败", err)
	}
	return nil
}
