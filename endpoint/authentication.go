package endpoint

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/model"
	"github.com/jihokang/massage-shop-web/util"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login authenticates against the stored password hash and issues a signed
// bearer token. Bad credentials always answer 401 with the same message so
// a caller cannot distinguish an unknown username from a wrong password.
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	ip := c.ClientIP()
	agent := c.Request.UserAgent()

	var user model.User
	err := db.Where("username = ?", req.Username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		util.LogLoginFailure(req.Username, ip, agent, "user not found")
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid credentials",
			Err: fmt.Errorf("user not found"),
		})
		return
	}
	if err != nil {
		util.LogLoginFailure(req.Username, ip, agent, "database error")
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	match, err := util.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		util.LogLoginFailure(req.Username, ip, agent, "password verification error")
		util.CallServerError(c, util.APIErrorParams{Msg: "Password verification failed", Err: err})
		return
	}
	if !match {
		util.LogLoginFailure(req.Username, ip, agent, "invalid password")
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid credentials",
			Err: fmt.Errorf("invalid password"),
		})
		return
	}

	tokenString, err := util.CreateToken(user.Username, user.Role)
	if err != nil {
		util.LogLoginFailure(req.Username, ip, agent, "token generation failed")
		util.CallServerError(c, util.APIErrorParams{Msg: "Could not generate token", Err: err})
		return
	}

	util.LogLoginSuccess(user.Username, ip, agent)
	c.JSON(http.StatusOK, LoginResponse{Token: tokenString, Role: user.Role})
}
