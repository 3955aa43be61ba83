package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"team-capacity-backend/internal/auth"
	"team-capacity-backend/internal/config"
	"team-capacity-backend/internal/database"
	"team-capacity-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type EmployeeData struct {
	Name               string `yaml:"name"`
	Email              string `yaml:"email,omitempty"`
	WorkDays           []int  `yaml:"work_days,omitempty"`
	AnnualLeaveDefault *int   `yaml:"annual_leave_default,omitempty"`
	Hidden             bool   `yaml:"hidden,omitempty"`
}

type ProjectData struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Status string `yaml:"status,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

type UserData struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Role         string `yaml:"role"`
	EmployeeName string `yaml:"employee_name,omitempty"`
}

// File structures
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	admins, err := loadDataFromYAMLFiles(db, "scripts/data", cfg.DefaultAnnualLeaveDays)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if cfg.AuthEnabled && cfg.IsDevelopment() {
		printDevTokens(cfg, admins)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // "record not found" is expected while checking for existing rows
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles creates whatever is missing and returns the admin users.
func loadDataFromYAMLFiles(db *gorm.DB, dataDir string, defaultLeave int) ([]*models.User, error) {
	var employeesFile EmployeesFile
	if err := readYAMLFiles(dataDir, "employees", func(data []byte) error {
		var file EmployeesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		employeesFile.Employees = append(employeesFile.Employees, file.Employees...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	var projectsFile ProjectsFile
	if err := readYAMLFiles(dataDir, "projects", func(data []byte) error {
		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		projectsFile.Projects = append(projectsFile.Projects, file.Projects...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	var usersFile UsersFile
	if err := readYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		usersFile.Users = append(usersFile.Users, file.Users...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	// Employees first, users may link to them
	employeeMap := make(map[string]*models.Employee)
	employeeCreated := 0
	for _, employeeData := range employeesFile.Employees {
		employee, created, err := createEmployee(db, employeeData, defaultLeave)
		if err != nil {
			return nil, fmt.Errorf("failed to create employee %s: %w", employeeData.Name, err)
		}
		employeeMap[employeeData.Name] = employee
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employeesFile.Employees))

	projectCreated := 0
	for _, projectData := range projectsFile.Projects {
		_, created, err := createProject(db, projectData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create project %s: %v", projectData.Name, err)
			continue
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projectsFile.Projects))

	var admins []*models.User
	userCreated := 0
	for _, userData := range usersFile.Users {
		user, created, err := createUser(db, userData, employeeMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create user %s: %v", userData.Email, err)
			continue
		}
		if created {
			userCreated++
		}
		if user.Role == models.UserRoleAdmin {
			admins = append(admins, user)
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(usersFile.Users))

	return admins, nil
}

// readYAMLFiles hands every .yaml file under dataDir whose path mentions kind to fn.
func readYAMLFiles(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createEmployee(db *gorm.DB, employeeData EmployeeData, defaultLeave int) (*models.Employee, bool, error) {
	var existing models.Employee
	err := db.Where("name = ?", employeeData.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	leave := defaultLeave
	if employeeData.AnnualLeaveDefault != nil {
		leave = *employeeData.AnnualLeaveDefault
	}

	employee := &models.Employee{
		Name:               employeeData.Name,
		Email:              strings.ToLower(strings.TrimSpace(employeeData.Email)),
		WorkDays:           models.WorkDays(employeeData.WorkDays).OrDefault(),
		AnnualLeaveDefault: leave,
		IsVisible:          !employeeData.Hidden,
	}
	if err := db.Create(employee).Error; err != nil {
		return nil, false, err
	}
	return employee, true, nil
}

func createProject(db *gorm.DB, projectData ProjectData) (*models.Project, bool, error) {
	var existing models.Project
	err := db.Where("name = ?", projectData.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	status := models.ProjectStatus(projectData.Status)
	if status == "" {
		status = models.ProjectStatusUnconfirmed
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", projectData.Status)
	}

	project := &models.Project{
		Name:      projectData.Name,
		Color:     projectData.Color,
		Status:    status,
		IsVisible: !projectData.Hidden,
	}
	if err := db.Create(project).Error; err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func createUser(db *gorm.DB, userData UserData, employeeMap map[string]*models.Employee) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := models.UserRole(userData.Role)
	if role == "" {
		role = models.UserRoleMember
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", userData.Role)
	}

	user := &models.User{
		Name:  userData.Name,
		Email: email,
		Role:  role,
	}
	if userData.EmployeeName != "" {
		employee, ok := employeeMap[userData.EmployeeName]
		if !ok {
			return nil, false, fmt.Errorf("employee %q not found", userData.EmployeeName)
		}
		user.EmployeeID = &employee.ID
	}

	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func printDevTokens(cfg *config.Config, admins []*models.User) {
	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTTokenTTL)
	if err != nil {
		log.Printf("⚠️  Warning: cannot issue dev tokens: %v", err)
		return
	}

	for _, admin := range admins {
		token, err := authService.GenerateJWT(admin)
		if err != nil {
			log.Printf("⚠️  Warning: failed to sign token for %s: %v", admin.Email, err)
			continue
		}
		log.Printf("🔑 %s: %s", admin.Email, token)
	}
}
