package repository

import (
	"gorm.io/gorm"

	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

type TeamRepository interface {
	Create(team *model.Team) error
	Update(team *model.Team) error
	FindByID(id int64) (*model.Team, error)
	FindByName(name string) (*model.Team, error)
	ListByProject(projectID int64) ([]*model.Team, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *model.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建团队失败", err)
	}
	return nil
}

func (r *teamRepository) Update(team *model.Team) error {
	if err := r.db.Save(team).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新团队失败", err)
	}
	return nil
}

func (r *teamRepository) FindByID(id int64) (*model.Team, error) {
	var team model.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "团队不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队失败", err)
	}
	return &team, nil
}

// FindByName 只查活跃记录
func (r *teamRepository) FindByName(name string) (*model.Team, error) {
	var team model.Team
	err := r.db.Where("name = ?", name).First(&team).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队失败", err)
	}
	return &team, nil
}

func (r *teamRepository) ListByProject(projectID int64) ([]*model.Team, error) {
	var teams []*model.Team
	if err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队列表失败", err)
	}
	return teams, nil
}
