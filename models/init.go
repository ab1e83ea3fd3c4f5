package models

import "outings/db"

func Init() error {
	return db.Instance.AutoMigrate(&User{}, &Place{}, &Review{})
}
