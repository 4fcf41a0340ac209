package repository

import (
	"gorm.io/gorm"

	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

type IssueRepository interface {
	Create(issue *model.Issue) error
	Update(issue *model.Issue) error
	FindByID(id int64, opts ...QueryOption) (*model.Issue, error)
	ListByProject(projectID int64, page, pageSize int, status string) ([]*model.Issue, int64, error)
}

type issueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &issueRepository{db: db}
}

func (r *issueRepository) Create(issue *model.Issue) error {
	if err := r.db.Create(issue).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建事项失败", err)
	}
	return nil
}

func (r *issueRepository) Update(issue *model.Issue) error {
	if err := r.db.Save(issue).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新事项失败", err)
	}
	return nil
}

func (r *issueRepository) FindByID(id int64, opts ...QueryOption) (*model.Issue, error) {
	query := r.db
	for _, opt := range opts {
		query = opt(query)
	}

	var issue model.Issue
	err := query.First(&issue, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "事项不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询事项失败", err)
	}
	return &issue, nil
}

func (r *issueRepository) ListByProject(projectID int64, page, pageSize int, status string) ([]*model.Issue, int64, error) {
	var issues []*model.Issue
	var total int64

	query := r.db.Model(&model.Issue{}).Where("project_id = ?", projectID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计事项失败", err)
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&issues).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询事项列表失败", err)
	}

	return issues, total, nil
}
