package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 这个算是 user 专属的
var ErrUserDuplicate = errors.New("用户已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	Activate(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) Activate(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active": true,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password": password,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) UpdateEmail(ctx context.Context, id int64, email string) error {
	err := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"email": email,
			"utime": time.Now().UnixMilli(),
		}).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrUserDuplicate
		}
	}
	return err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&User{})
}

type User struct {
	Id       int64          `gorm:"primaryKey,autoIncrement"`
	SN       string         `gorm:"type:varchar(256);unique"`
	Email    sql.NullString `gorm:"type:varchar(256);unique"`
	Password string         `gorm:"type:varchar(256)"`
	Nickname string
	Avatar   string
	Birthday string `gorm:"type:varchar(32)"`
	Gender   uint8
	Address  string
	Phone    string `gorm:"type:varchar(32)"`
	Active   bool
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
