package db

import "gorm.io/gorm"

// Database is the long-lived store handle shared by every repository. It is
// established once at process start and injected; never ambient state.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
