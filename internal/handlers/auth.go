package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/middleware"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/utils"
)

// ================== AUTH ADMIN ==================
// Pas d'inscription ouverte : le painel est réservé à la loja.
// Le premier admin est créé via /api/auth/bootstrap, les suivants par
// un admin connecté.

func findUserByEmail(email string) (*models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, email, name, password_hash, role, provider, created_at
		FROM users`).Iter()

	var u models.User
	for iter.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Provider, &u.CreatedAt) {
		if strings.EqualFold(u.Email, email) {
			found := u
			if err := iter.Close(); err != nil {
				return nil, err
			}
			return &found, nil
		}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return nil, nil
}

func countUsers() (int, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return 0, err
	}

	var count int
	if err := session.Query(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func insertUser(user models.User) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO users (id, email, name, password_hash, role, provider, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
		user.Provider, user.CreatedAt).Exec()
}

// 🟢 POST /api/auth/bootstrap — crée le premier admin, uniquement si
// la table users est vide
func BootstrapAdmin(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	count, err := countUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Administrador já configurado"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao processar senha"})
		return
	}

	user := models.User{
		ID:           gocql.TimeUUID(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         input.Name,
		PasswordHash: hash,
		Role:         "admin",
		Provider:     "local",
		CreatedAt:    time.Now(),
	}

	if err := insertUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// 🟢 POST /api/admin/users — un admin connecté crée un autre utilisateur
func CreateUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	role := input.Role
	if role != "admin" && role != "viewer" {
		role = "viewer"
	}

	existing, err := findUserByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Já existe uma conta com este email"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao processar senha"})
		return
	}

	user := models.User{
		ID:           gocql.TimeUUID(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
		Provider:     "local",
		CreatedAt:    time.Now(),
	}

	if err := insertUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// 🟢 POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := findUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		middleware.RecordFailedLogin(email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		middleware.RecordFailedLogin(email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		return
	}

	middleware.ResetLoginAttempts(email)

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// 🟢 GET /api/auth/me
func Me(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
		return
	}

	user, err := findUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	c.JSON(http.StatusOK, user)
}
