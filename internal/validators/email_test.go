package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainOf(t *testing.T) {
	cases := []struct {
		email  string
		domain string
		ok     bool
	}{
		{"joao@exemplo.com.br", "exemplo.com.br", true},
		{"JOAO@Exemplo.COM", "exemplo.com", true},
		{`"a@b"@exemplo.com`, "exemplo.com", true},
		{"sem-arroba", "", false},
		{"vazio@", "", false},
		{"espaco@exem plo.com", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			domain, ok := domainOf(tc.email)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.domain, domain)
		})
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	// Casos que falham antes de qualquer consulta DNS.
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("vazio@"))
	assert.False(t, IsEmailDomainValid("@"))
}
