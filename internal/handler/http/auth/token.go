package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"texttools/internal/handler/http/requestid"
)

// tokenTTL is how long issued tokens stay valid.
const tokenTTL = 1 * time.Hour

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// TokenHandler authenticates against the configured API credentials and
// issues an HS256 JWT.
func TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !credentialsMatch(req.Username, req.Password) {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.Username,
			"exp": time.Now().Add(tokenTTL).Unix(),
			"iat": time.Now().Unix(),
		})

		signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()))
			RecordAuthRequest("failure")
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("success")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{
			Token:     signed,
			ExpiresIn: int(tokenTTL.Seconds()),
		}); err != nil {
			logger.Error("failed to encode token response",
				slog.String("error", err.Error()))
		}
	}
}

// credentialsMatch compares the submitted credentials against the
// configured ones in constant time. Hashing first keeps the comparison
// constant time even when lengths differ.
func credentialsMatch(username, password string) bool {
	userHash := sha256.Sum256([]byte(username))
	wantUserHash := sha256.Sum256([]byte(os.Getenv("API_USER")))
	passHash := sha256.Sum256([]byte(password))
	wantPassHash := sha256.Sum256([]byte(os.Getenv("API_PASSWORD")))

	userOK := subtle.ConstantTimeCompare(userHash[:], wantUserHash[:]) == 1
	passOK := subtle.ConstantTimeCompare(passHash[:], wantPassHash[:]) == 1
	return userOK && passOK
}
