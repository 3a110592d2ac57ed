package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/interfaces/http/response"
	"mandi-bazaar.backend/pkg/jwt"
)

type SignupService interface {
	RequestOTP(ctx context.Context, input *entities.RequestOTPInput) error
	Signup(ctx context.Context, input *entities.SignupInput) (*entities.Account, *jwt.TokenPair, error)
}

type ShopProfileService interface {
	CreateShopProfile(ctx context.Context, wholesalerID string, input *entities.CreateShopProfileInput, certificate io.Reader, certificateName string) (*entities.WholesalerProfile, error)
}

// WholesalerHandler handles wholesaler onboarding endpoints
type WholesalerHandler struct {
	signupUsecase      SignupService
	shopProfileUsecase ShopProfileService
}

// NewWholesalerHandler creates a new wholesaler handler
func NewWholesalerHandler(signupUsecase SignupService, shopProfileUsecase ShopProfileService) *WholesalerHandler {
	return &WholesalerHandler{
		signupUsecase:      signupUsecase,
		shopProfileUsecase: shopProfileUsecase,
	}
}

// RequestOTP issues a verification code to a phone number
// POST /api/v1/wholesaler/request-otp
func (h *WholesalerHandler) RequestOTP(c *gin.Context) {
	var input entities.RequestOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.signupUsecase.RequestOTP(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "OTP sent successfully", nil)
}

// Signup registers a new wholesaler after OTP verification
// POST /api/v1/wholesaler/signup
func (h *WholesalerHandler) Signup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	account, tokens, err := h.signupUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Wholesaler signed up successfully, please create shop profile", gin.H{
		"wholesaler": account,
		"tokens":     tokens,
	})
}

// CreateShopProfile populates the wholesaler's shop profile from a multipart
// form with the business certificate file
// POST /api/v1/wholesaler/create-shop-profile/:wholesalerId
func (h *WholesalerHandler) CreateShopProfile(c *gin.Context) {
	var input entities.CreateShopProfileInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var certificate io.Reader
	certificateName := ""
	fileHeader, err := c.FormFile("businessCertificate")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			response.Error(c, domainerrors.UploadError("Failed to upload business certificate: "+openErr.Error()))
			return
		}
		defer file.Close()
		certificate = file
		certificateName = fileHeader.Filename
	}

	profile, err := h.shopProfileUsecase.CreateShopProfile(
		c.Request.Context(),
		c.Param("wholesalerId"),
		&input,
		certificate,
		certificateName,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shop profile updated successfully, awaiting admin verification", gin.H{
		"profile": profile,
	})
}
