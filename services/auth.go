package services

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"vitalfit/config/db"
	"vitalfit/config/jwt"
	"vitalfit/models"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxOtpAttempts    = 5
	otpResendCooldown = time.Minute
)

type AuthResponse struct {
	UserID string      `json:"userId"`
	Name   string      `json:"name"`
	Email  string      `json:"email,omitempty"`
	Phone  string      `json:"phone,omitempty"`
	Role   models.Role `json:"role"`
	Token  string      `json:"token"`
}

type RegisterInput struct {
	Name                  string `json:"name"`
	Age                   int    `json:"age"`
	Gender                string `json:"gender"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
	Role                  string `json:"role"`
	Consent               bool   `json:"consent"`
	PrivacyNoticeAccepted bool   `json:"privacyNoticeAccepted"`
	AadharNumber          string `json:"aadharNumber"`
	AbhaID                string `json:"abhaId"`
}

func userColl() *mongo.Collection {
	return db.OpenCollections(util.UserCollection)
}

/*
* Build the $or filter for whichever identifiers were supplied
 */
func identityFilter(email, phone string) bson.M {
	var ors []bson.M
	if email != "" {
		ors = append(ors, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
	}
	if phone != "" {
		ors = append(ors, bson.M{"phone": strings.TrimSpace(phone)})
	}
	if len(ors) == 0 {
		return nil
	}
	return bson.M{"$or": ors}
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

/*
* Register a booking-party or consultant account
 */
func RegisterUser(c *gin.Context, in RegisterInput) (*AuthResponse, error) {
	if in.Email == "" && in.Phone == "" {
		return nil, util.MissingField("email or phone is required")
	}
	if in.Password == "" {
		return nil, util.MissingField("password is required")
	}
	if !in.Consent || !in.PrivacyNoticeAccepted {
		return nil, util.BadRequest("consent and privacy notice acceptance are required")
	}
	role := models.RoleUser
	if in.Role != "" {
		parsed, ok := models.ParseRole(in.Role)
		if !ok || parsed.Privileged() {
			return nil, util.BadRequest("Invalid role")
		}
		role = parsed
	}

	if filter := identityFilter(in.Email, in.Phone); filter != nil {
		var existing models.User
		err := db.FindOne(c, userColl(), filter, &existing)
		if err == nil {
			return nil, util.BadRequest(util.USER_ALREADY_EXISTS)
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		Name:                  in.Name,
		Age:                   in.Age,
		Gender:                in.Gender,
		Phone:                 strings.TrimSpace(in.Phone),
		Email:                 strings.ToLower(strings.TrimSpace(in.Email)),
		Password:              hashed,
		Role:                  role,
		Consent:               in.Consent,
		PrivacyNoticeAccepted: in.PrivacyNoticeAccepted,
		AadharNumber:          in.AadharNumber,
		AbhaID:                in.AbhaID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	inserted, err := db.CreateOne(c, userColl(), user)
	if err != nil {
		return nil, err
	}
	user.ID = inserted.InsertedID.(primitive.ObjectID)

	token, err := jwt.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Token:  token,
	}, nil
}

/*
* Register an admin account, pre-verified
 */
func RegisterAdmin(c *gin.Context, in RegisterInput) (*AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, util.MissingField("email and password are required")
	}

	var existing models.User
	err := db.FindOne(c, userColl(), bson.M{"email": strings.ToLower(strings.TrimSpace(in.Email))}, &existing)
	if err == nil {
		return nil, util.BadRequest("Admin with this email already exists")
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := models.User{
		Name:                  in.Name,
		Age:                   in.Age,
		Phone:                 strings.TrimSpace(in.Phone),
		Email:                 strings.ToLower(strings.TrimSpace(in.Email)),
		Password:              hashed,
		Role:                  models.RoleAdmin,
		Consent:               true,
		PrivacyNoticeAccepted: true,
		EmailVerified:         true,
		PhoneVerified:         in.Phone != "",
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	inserted, err := db.CreateOne(c, userColl(), admin)
	if err != nil {
		return nil, err
	}
	admin.ID = inserted.InsertedID.(primitive.ObjectID)

	token, err := jwt.GenerateJWT(admin.ID.Hex(), string(admin.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		UserID: admin.ID.Hex(),
		Name:   admin.Name,
		Email:  admin.Email,
		Role:   admin.Role,
		Token:  token,
	}, nil
}

type LoginInput struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

/*
* Login by email, phone or a bare identifier that could be either
 */
func LoginUser(c *gin.Context, in LoginInput) (*AuthResponse, error) {
	if in.Password == "" {
		return nil, util.MissingField("password is required")
	}

	query := bson.M{}
	switch {
	case in.Email != "":
		query["email"] = strings.ToLower(strings.TrimSpace(in.Email))
	case in.Phone != "":
		query["phone"] = strings.TrimSpace(in.Phone)
	case in.Identifier != "":
		identifier := strings.TrimSpace(in.Identifier)
		if isAllDigits(identifier) {
			query["phone"] = identifier
		} else {
			query["email"] = strings.ToLower(identifier)
		}
	default:
		return nil, util.MissingField("email, phone or identifier is required")
	}

	var user models.User
	err := db.FindOne(c, userColl(), query, &user)
	if err != nil {
		return nil, util.Unauthorized(util.INVALID_CREDENTIALS)
	}
	if user.Password == "" {
		return nil, util.Unauthorized(util.INVALID_CREDENTIALS)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, util.Unauthorized(util.INVALID_CREDENTIALS)
	}

	token, err := jwt.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, err
	}
	TouchProfileLogin(c, user.ID)
	return &AuthResponse{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   user.Role,
		Token:  token,
	}, nil
}

func ChangePassword(c *gin.Context, data map[string]interface{}) error {
	userId, _ := data["userId"].(string)
	newPassword, _ := data["newPassword"].(string)
	if userId == "" || newPassword == "" {
		return util.MissingField("User ID and new password are required")
	}
	uid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return util.NotFound(util.USER_NOT_FOUND)
	}
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = db.UpdateOne(c, userColl(), bson.M{"_id": uid}, bson.M{"$set": bson.M{"password": hashed, "updatedAt": time.Now()}})
	return err
}

func maskAadhaar(aadhaar string) string {
	if len(aadhaar) < 4 {
		return ""
	}
	return "XXXX-XXXX-" + aadhaar[len(aadhaar)-4:]
}

func maskAbha(abha string) string {
	if len(abha) < 6 {
		return ""
	}
	return abha[:3] + "XXXXXX" + abha[len(abha)-3:]
}

func maskPhone(phone string) string {
	if len(phone) < 4 {
		return ""
	}
	return "XXXXXX" + phone[len(phone)-4:]
}

/*
* Fetch the actor's own account with sensitive identifiers masked
 */
func FetchOwnAccount(c *gin.Context) (map[string]interface{}, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.FindOne(c, userColl(), bson.M{"_id": actor.ID}, &user); err != nil {
		return nil, util.NotFound(util.USER_NOT_FOUND)
	}
	return map[string]interface{}{
		"id":            user.ID.Hex(),
		"name":          user.Name,
		"age":           user.Age,
		"gender":        user.Gender,
		"email":         user.Email,
		"phone":         maskPhone(user.Phone),
		"role":          user.Role,
		"aadharNumber":  maskAadhaar(user.AadharNumber),
		"abhaId":        maskAbha(user.AbhaID),
		"isVerified":    user.IsVerified,
		"emailVerified": user.EmailVerified,
		"phoneVerified": user.PhoneVerified,
		"createdAt":     user.CreatedAt,
	}, nil
}

/*
* Send a login OTP, rate-limited per user
 */
func SendOtp(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	email, _ := data["email"].(string)
	phone, _ := data["phone"].(string)
	filter := identityFilter(email, phone)
	if filter == nil {
		return nil, util.MissingField("email or phone is required")
	}

	var user models.User
	if err := db.FindOne(c, userColl(), filter, &user); err != nil {
		return nil, util.NotFound("User not registered")
	}

	now := time.Now()
	if user.OtpAttempts >= maxOtpAttempts {
		return nil, util.TooManyRequests("Maximum OTP resend attempts reached, please try later.")
	}
	if user.OtpLastSent != nil && now.Sub(*user.OtpLastSent) < otpResendCooldown {
		wait := int((otpResendCooldown - now.Sub(*user.OtpLastSent)).Seconds()) + 1
		return nil, util.TooManyRequests(fmt.Sprintf("Please wait %d seconds before requesting OTP again.", wait))
	}

	otp := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
	_, err := db.UpdateOne(c, userColl(), bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"otp":         otp,
		"otpAttempts": user.OtpAttempts + 1,
		"otpLastSent": now,
	}})
	if err != nil {
		return nil, err
	}

	record := models.Otp{
		Otp:       otp,
		UserID:    user.ID,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: now,
	}
	if _, err := db.CreateOne(c, db.OpenCollections(util.OtpCollection), record); err != nil {
		return nil, err
	}

	if user.Email != "" {
		if mailErr := util.SendMail(user.Email, "Your VitalFit OTP", "Your OTP is "+otp); mailErr != nil {
			log.Println("Error while sending OTP mail: ", mailErr)
		}
	}

	// OTP echoed in the response for dev/testing only, as the source does.
	return map[string]interface{}{"message": "OTP sent", "otp": otp}, nil
}

func ConfirmOtp(c *gin.Context, data map[string]interface{}) (bool, error) {
	email, _ := data["email"].(string)
	otp, _ := data["otp"].(string)
	if email == "" || otp == "" {
		return false, util.MissingField("email and otp are required")
	}

	var user models.User
	if err := db.FindOne(c, userColl(), bson.M{"email": strings.ToLower(strings.TrimSpace(email))}, &user); err != nil {
		return false, util.NotFound("Email not registered")
	}

	var record models.Otp
	err := db.FindOne(c, db.OpenCollections(util.OtpCollection), bson.M{"email": user.Email, "otp": otp, "userId": user.ID}, &record)
	if err != nil {
		return false, nil
	}
	return user.Otp == otp, nil
}
