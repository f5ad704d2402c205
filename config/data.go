package config

import "github.com/spf13/viper"

// Data data config struct
type Data struct {
	MongoDB *MongoDB
}

// MongoDB mongodb config struct
type MongoDB struct {
	URI      string
	Database string
}

// getData returns the data config.
func getData(v *viper.Viper) *Data {
	return &Data{
		MongoDB: &MongoDB{
			URI:      v.GetString("data.mongodb.uri"),
			Database: v.GetString("data.mongodb.database"),
		},
	}
}
