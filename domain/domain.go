// Package domain applies the punycode codec to whole domain names.
//
// Names are split into labels with github.com/miekg/dns, so escaped dots
// ("a\.b") stay inside their label. Only labels that need conversion are
// touched; a trailing root dot is preserved. No IDNA mapping, validation or
// length checks are performed.
package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/miekg/dns"
	"go.uber.org/zap"

	"github.com/wippyai/punycode"
	"github.com/wippyai/punycode/errors"
)

// ACEPrefix marks a label carrying a punycode-encoded name.
const ACEPrefix = "xn--"

// ToASCII encodes every label of name containing a non-ASCII code point as
// ACEPrefix followed by its punycode form. ASCII labels are returned as is.
func ToASCII(name string) (string, error) {
	return convert(name, func(label string) (string, error) {
		if isASCII(label) {
			return label, nil
		}
		enc, err := punycode.EncodeString(label)
		if err != nil {
			return "", err
		}
		return ACEPrefix + enc, nil
	})
}

// ToUnicode decodes every label of name that starts with ACEPrefix, compared
// case-insensitively. Other labels are returned as is.
func ToUnicode(name string) (string, error) {
	return convert(name, func(label string) (string, error) {
		if !hasACEPrefix(label) {
			return label, nil
		}
		return punycode.DecodeString(label[len(ACEPrefix):])
	})
}

func convert(name string, fn func(string) (string, error)) (string, error) {
	labels := dns.SplitDomainName(name)
	switch {
	case name == "":
		return "", nil
	case labels == nil: // name == "."
		return ".", nil
	}

	out := make([]string, len(labels), len(labels)+1)
	for i, label := range labels {
		conv, err := fn(label)
		if err != nil {
			Logger().Debug("label conversion failed",
				zap.String("name", name),
				zap.Int("label", i),
				zap.Error(err))
			e := errors.Wrap(errors.PhaseDomain, err, "cannot convert label "+strconv.Quote(label))
			e.Path = []string{"label", strconv.Itoa(i)}
			e.Value = label
			return "", e
		}
		out[i] = conv
	}
	if dns.IsFqdn(name) {
		out = append(out, "")
	}
	return strings.Join(out, "."), nil
}

func hasACEPrefix(label string) bool {
	return len(label) >= len(ACEPrefix) && strings.EqualFold(label[:len(ACEPrefix)], ACEPrefix)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
