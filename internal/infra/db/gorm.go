package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect は端末ローカルのsqliteファイルを開いて *gorm.DB を返す。
func Connect(path string) (*gorm.DB, error) {
	if path == "" {
		path = "luxestore.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
