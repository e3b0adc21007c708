package main

import (
	"ap_payment_reports/config"
	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	"ap_payment_reports/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.WithField("departments", global.RegistryCollections.Names()).Info("Initialized collection registry")
}

// InitCollections đăng ký collection nguồn của từng department, key là tên department
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	sources := map[paymentreportdto.Department]*mongo.Collection{
		paymentreportdto.DepartmentRevenue: client.Database(cfg.MongoDB_DBName_Revenue).Collection(cfg.MongoDB_ColName_Revenue),
		paymentreportdto.DepartmentCDMA:    client.Database(cfg.MongoDB_DBName_CDMA).Collection(cfg.MongoDB_ColName_CDMA),
	}

	for department, coll := range sources {
		registered, err := global.RegistryCollections.Register(string(department), coll)
		if err != nil {
			logrus.Errorf("Failed to register collection for %s: %v", department, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s.%s registered for department %s", coll.Database().Name(), coll.Name(), department)
		} else {
			logrus.Errorf("Department %s already registered", department)
		}
	}
	return nil
}
