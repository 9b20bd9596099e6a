package models

import (
	"log"

	"bitbucket.org/mmdatafocus/botreport_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&BatchHistory{},
		&CleanEntry{},
		&CustomerError{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
