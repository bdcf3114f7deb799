package firewall

import "github.com/Sergeydigl3/do-runner-firewall/internal/ports"

// BuildInboundRules creates one rule per "port/protocol" entry, allowing only ip.
func BuildInboundRules(entries []string, ip string) []InboundRule {
	rules := make([]InboundRule, 0, len(entries))

	for _, entry := range entries {
		port, protocol := ports.Split(entry)
		rules = append(rules, InboundRule{
			Protocol: protocol,
			Ports:    port,
			Sources: Sources{
				Addresses: []string{ip},
			},
		})
	}

	return rules
}
