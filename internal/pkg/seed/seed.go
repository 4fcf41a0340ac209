package seed

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"worktrack/internal/model"
	"worktrack/internal/pkg/crypto"
	"worktrack/internal/pkg/logger"
	"worktrack/pkg/constants"
)

// Data 初始数据文件结构
type Data struct {
	Users       []UserSeed       `yaml:"users"`
	Departments []DepartmentSeed `yaml:"departments"`
}

// UserSeed 初始用户
type UserSeed struct {
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Password    string   `yaml:"password"`
	Authorities []string `yaml:"authorities"`
}

// DepartmentSeed 初始部门
type DepartmentSeed struct {
	Name string `yaml:"name"`
}

// Load 读取并解析初始数据文件
func Load(path string) (*Data, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取初始数据文件失败: %w", err)
	}

	data := &Data{}
	if err := yaml.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("解析初始数据文件失败: %w", err)
	}
	return data, nil
}

// Apply 按需写入初始数据, 已存在的记录跳过
func Apply(db *gorm.DB, data *Data) error {
	for _, u := range data.Users {
		var count int64
		if err := db.Model(&model.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := crypto.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("哈希初始用户密码失败: %w", err)
		}

		authorities := u.Authorities
		if len(authorities) == 0 {
			authorities = []string{constants.RoleTeamMember}
		}

		user := &model.User{
			Name:        u.Name,
			Email:       u.Email,
			Password:    hash,
			Authorities: authorities,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
		logger.Info("初始用户创建成功", zap.String("email", u.Email))
	}

	for _, d := range data.Departments {
		var count int64
		if err := db.Model(&model.Department{}).Where("name = ?", d.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&model.Department{Name: d.Name}).Error; err != nil {
			return err
		}
		logger.Info("初始部门创建成功", zap.String("name", d.Name))
	}

	return nil
}
