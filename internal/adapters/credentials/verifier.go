package credentials

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminVerifier сверяет предъявленный секрет с админским секретом из
// конфигурации. Секрет инжектируется при создании - никаких глобальных
// констант процесса.
type AdminVerifier struct {
	secret string
	hashed bool
}

func NewAdminVerifier(secret string) (*AdminVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("admin secret cannot be empty")
	}
	return &AdminVerifier{
		secret: secret,
		// В конфиге может лежать bcrypt-хэш вместо открытого секрета.
		hashed: strings.HasPrefix(secret, "$2a$") || strings.HasPrefix(secret, "$2b$") || strings.HasPrefix(secret, "$2y$"),
	}, nil
}

// Verify - true только при совпадении непустого секрета. Пустой ввод -
// невалидный, не ошибка.
func (v *AdminVerifier) Verify(secret string) bool {
	if secret == "" {
		return false
	}
	if v.hashed {
		return bcrypt.CompareHashAndPassword([]byte(v.secret), []byte(secret)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(secret)) == 1
}
