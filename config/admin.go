package config

import "github.com/spf13/viper"

// Admin holds the bootstrap credentials for the administrative account.
// All three fields have defaults so the demo credentials work against an
// empty database.
type Admin struct {
	Email    string
	Username string
	Password string
}

// getAdmin returns the admin bootstrap config.
func getAdmin(v *viper.Viper) *Admin {
	return &Admin{
		Email:    v.GetString("admin.email"),
		Username: v.GetString("admin.username"),
		Password: v.GetString("admin.password"),
	}
}
