package profile

import (
	"fmt"
	"strings"
)

// BuildCommand renders the ssh invocation for this profile. Output is
// deterministic: flags always appear in the order -p, -i, -J, and the
// default port never emits a -p flag.
//
// Field values are interpolated verbatim with no shell escaping; that is
// the documented contract. Execution splits the string into an argv and
// spawns the process without a shell, so metacharacters in fields are
// never interpreted (see runner.Split).
func (p *Profile) BuildCommand() string {
	var b strings.Builder

	fmt.Fprintf(&b, "ssh %s@%s", p.Username, p.Host)

	if p.Port != DefaultPort {
		fmt.Fprintf(&b, " -p %d", p.Port)
	}
	if p.PrivateKeyPath != "" {
		fmt.Fprintf(&b, " -i %s", p.PrivateKeyPath)
	}
	if p.JumpHost != "" {
		fmt.Fprintf(&b, " -J %s", p.JumpHost)
	}

	return b.String()
}
