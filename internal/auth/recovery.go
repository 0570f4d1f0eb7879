package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"zen-tracker-go/internal/models"
)

// RecoveryCodeCount is how many codes a generation request produces.
const RecoveryCodeCount = 12

// GenerateRecoveryCodes creates n random 8-character hex codes. The plain
// codes are shown to the user exactly once; only the bcrypt-hashed records
// are stored.
func GenerateRecoveryCodes(n int) ([]string, models.RecoveryCodeList, error) {
	plain := make([]string, 0, n)
	hashed := make(models.RecoveryCodeList, 0, n)
	for i := 0; i < n; i++ {
		buf := make([]byte, 4)
		if _, err := rand.Read(buf); err != nil {
			return nil, nil, err
		}
		code := strings.ToUpper(hex.EncodeToString(buf))
		hash, err := HashPassword(code)
		if err != nil {
			return nil, nil, err
		}
		plain = append(plain, code)
		hashed = append(hashed, models.RecoveryCode{Code: hash, Used: false})
	}
	return plain, hashed, nil
}

// MatchRecoveryCode scans the unused hashed codes for one matching candidate
// and returns its index, or -1 when no unused code matches.
func MatchRecoveryCode(codes models.RecoveryCodeList, candidate string) int {
	for i, c := range codes {
		if c.Used {
			continue
		}
		if CheckPassword(candidate, c.Code) {
			return i
		}
	}
	return -1
}
