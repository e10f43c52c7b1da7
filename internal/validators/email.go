package validators

import (
	"net"
	"strings"
)

// domainOf extrai o domínio do endereço. Endereço sem "@" ou com domínio
// vazio não tem o que resolver.
func domainOf(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "", false
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if domain == "" || strings.Contains(domain, " ") {
		return "", false
	}

	return domain, true
}

// IsEmailDomainValid resolve o domínio do e-mail no DNS antes do cadastro:
// MX primeiro, A/AAAA como fallback para domínios que recebem direto no
// host. Não garante caixa postal existente, só barra domínio digitado errado.
func IsEmailDomainValid(email string) bool {
	domain, ok := domainOf(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
