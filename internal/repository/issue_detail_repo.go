package repository

import (
	"gorm.io/gorm"

	"worktrack/internal/model"
	pkgErrors "worktrack/pkg/errors"
)

type IssueCommentRepository interface {
	Create(comment *model.IssueComment) error
	Update(comment *model.IssueComment) error
	FindByID(id int64) (*model.IssueComment, error)
	ListByIssue(issueID int64) ([]*model.IssueComment, error)
	Delete(id int64) error
}

type issueCommentRepository struct {
	db *gorm.DB
}

func NewIssueCommentRepository(db *gorm.DB) IssueCommentRepository {
	return &issueCommentRepository{db: db}
}

func (r *issueCommentRepository) Create(comment *model.IssueComment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建评论失败", err)
	}
	return nil
}

func (r *issueCommentRepository) Update(comment *model.IssueComment) error {
	if err := r.db.Save(comment).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新评论失败", err)
	}
	return nil
}

func (r *issueCommentRepository) FindByID(id int64) (*model.IssueComment, error) {
	var comment model.IssueComment
	err := r.db.First(&comment, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "评论不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询评论失败", err)
	}
	return &comment, nil
}

func (r *issueCommentRepository) ListByIssue(issueID int64) ([]*model.IssueComment, error) {
	var comments []*model.IssueComment
	if err := r.db.Where("issue_id = ?", issueID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询评论列表失败", err)
	}
	return comments, nil
}

func (r *issueCommentRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.IssueComment{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除评论失败", err)
	}
	return nil
}

type IssueAttachmentRepository interface {
	Create(attachment *model.IssueAttachment) error
	FindByID(id int64) (*model.IssueAttachment, error)
	ListByIssue(issueID int64) ([]*model.IssueAttachment, error)
	Delete(id int64) error
}

type issueAttachmentRepository struct {
	db *gorm.DB
}

func NewIssueAttachmentRepository(db *gorm.DB) IssueAttachmentRepository {
	return &issueAttachmentRepository{db: db}
}

func (r *issueAttachmentRepository) Create(attachment *model.IssueAttachment) error {
	if err := r.db.Create(attachment).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建附件失败", err)
	}
	return nil
}

func (r *issueAttachmentRepository) FindByID(id int64) (*model.IssueAttachment, error) {
	var attachment model.IssueAttachment
	err := r.db.First(&attachment, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.New(pkgErrors.CodeNotFound, "附件不存在")
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询附件失败", err)
	}
	return &attachment, nil
}

func (r *issueAttachmentRepository) ListByIssue(issueID int64) ([]*model.IssueAttachment, error) {
	var attachments []*model.IssueAttachment
	if err := r.db.Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&attachments).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询附件列表失败", err)
	}
	return attachments, nil
}

func (r *issueAttachmentRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.IssueAttachment{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除附件失败", err)
	}
	return nil
}

type IssueHistoryRepository interface {
	ListByIssue(issueID int64) ([]*model.IssueHistory, error)
}

type issueHistoryRepository struct {
	db *gorm.DB
}

func NewIssueHistoryRepository(db *gorm.DB) IssueHistoryRepository {
	return &issueHistoryRepository{db: db}
}

// ListByIssue 历史记录只读, 写入统一走审计记录器
func (r *issueHistoryRepository) ListByIssue(issueID int64) ([]*model.IssueHistory, error) {
	var histories []*model.IssueHistory
	if err := r.db.Where("issue_id = ?", issueID).
		Preload("ChangedBy").
		Order("created_at ASC").
		Find(&histories).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询事项历史失败", err)
	}
	return histories, nil
}
