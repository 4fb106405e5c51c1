package db

import (
	"fmt"
	"strings"

	"github.com/aldiyarseitov/shiftlog/internal/models"
)

// CreateUser registers a driver or an administrator
func CreateUser(name, role string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("user name cannot be empty")
	}
	if role != models.RoleDriver && role != models.RoleAdmin {
		return nil, fmt.Errorf("role must be '%s' or '%s'", models.RoleDriver, models.RoleAdmin)
	}

	var existing models.User
	if err := DB.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("user '%s' already exists", name)
	}

	user := models.User{Name: name, Role: role}
	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByName looks a user up by their unique name
func GetUserByName(name string) (*models.User, error) {
	var user models.User

	if err := DB.Where("name = ?", strings.TrimSpace(name)).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user '%s' not found", name)
	}

	return &user, nil
}

// GetUsers lists every registered user
func GetUsers() ([]models.User, error) {
	var users []models.User

	if err := DB.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// RequireAdmin resolves a name and checks admin rights
func RequireAdmin(name string) (*models.User, error) {
	user, err := GetUserByName(name)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, fmt.Errorf("user '%s' is not an administrator", name)
	}
	return user, nil
}
