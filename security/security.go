// Package security holds the PDF encryption settings passed to the
// interpreter: owner and user passwords, key length, revision and the
// permissions that are disabled.
//
//	var s security.Settings
//	s.OwnerPassword = "owner"
//	s.UserPassword = "user"
//	s.KeyLength = 128
//	s.Disable(security.Print, security.Copy, security.HighQualityPrint)
//	params, err := s.Params()
package security

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Permission is a PDF permission that can be disabled.
type Permission string

const (
	Base             Permission = "base"
	Print            Permission = "print"
	Modify           Permission = "modify"
	Copy             Permission = "copy"
	Annotate         Permission = "annotate"
	Interactive      Permission = "interactive"
	CopyAccess       Permission = "copy_access"
	Assemble         Permission = "assemble"
	HighQualityPrint Permission = "high_quality_print"
	All              Permission = "all"
)

// codes are the values summed into the interpreter's Permissions parameter.
// Base and Print share a code.
var codes = map[Permission]int{
	Base:             -4,
	Print:            -4,
	Modify:           -8,
	Copy:             -16,
	Annotate:         -32,
	Interactive:      -256,
	CopyAccess:       -512,
	Assemble:         -1024,
	HighQualityPrint: -2048,
	All:              -3904,
}

const (
	// DefaultKeyLength is the encryption key length in bits.
	DefaultKeyLength = 128
	// DefaultRevision is the security handler revision.
	DefaultRevision = 3
)

var passwordPattern = regexp.MustCompile(`^\w+$`)

// Settings is the security configuration of one document.
type Settings struct {
	OwnerPassword string
	UserPassword  string
	// KeyLength in bits, a multiple of 8 between 40 and 128. Zero means
	// DefaultKeyLength.
	KeyLength int
	// Revision of the standard security handler, 2 or 3. Zero means
	// DefaultRevision.
	Revision int

	disabled []Permission
}

// Disable adds permissions to revoke. Unknown names are reported by
// Validate.
func (s *Settings) Disable(perms ...Permission) {
	s.disabled = append(s.disabled, perms...)
}

// Disabled returns the revoked permissions in the order they were added.
func (s *Settings) Disabled() []Permission {
	return append([]Permission(nil), s.disabled...)
}

func (s *Settings) keyLength() int {
	if s.KeyLength == 0 {
		return DefaultKeyLength
	}
	return s.KeyLength
}

func (s *Settings) revision() int {
	if s.Revision == 0 {
		return DefaultRevision
	}
	return s.Revision
}

// Validate checks passwords, key length, revision and permission names.
func (s *Settings) Validate() error {
	keyLength := s.keyLength()
	revision := s.revision()
	err := validation.ValidateStruct(s,
		validation.Field(&s.OwnerPassword,
			validation.Required,
			validation.Match(passwordPattern).Error("must contain only letters, digits and underscores"),
		),
		validation.Field(&s.UserPassword,
			validation.Required,
			validation.Match(passwordPattern).Error("must contain only letters, digits and underscores"),
		),
		validation.Field(&s.KeyLength,
			validation.By(func(any) error {
				if keyLength < 40 || keyLength > 128 || keyLength%8 != 0 {
					return validation.NewError("security.key_length_invalid", "must be a multiple of 8 between 40 and 128")
				}
				return nil
			}),
		),
		validation.Field(&s.Revision,
			validation.By(func(any) error {
				if revision != 2 && revision != 3 {
					return validation.NewError("security.revision_invalid", "must be 2 or 3")
				}
				if revision == 2 && keyLength != 40 {
					return validation.NewError("security.revision_key_length", "revision 2 requires a 40 bit key")
				}
				return nil
			}),
		),
	)
	if err != nil {
		return err
	}

	for _, p := range s.disabled {
		if _, ok := codes[p]; !ok {
			return validation.Errors{
				"disabled": validation.NewError("security.permission_unknown", fmt.Sprintf("unknown permission %q", p)),
			}
		}
	}
	return nil
}

// Permissions returns the value of the interpreter's Permissions parameter:
// the sum of the distinct codes of the disabled permissions, or the code of
// All when All is disabled. The second result is false when nothing is
// disabled.
func (s *Settings) Permissions() (int, bool) {
	if len(s.disabled) == 0 {
		return 0, false
	}
	seen := make(map[int]bool)
	total := 0
	for _, p := range s.disabled {
		if p == All {
			return codes[All], true
		}
		code, ok := codes[p]
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		total += code
	}
	return total, true
}

// Params validates the settings and returns the interpreter switches.
func (s *Settings) Params() ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	params := []string{
		"-sOwnerPassword=" + s.OwnerPassword,
		"-sUserPassword=" + s.UserPassword,
		"-dEncryptionR=" + strconv.Itoa(s.revision()),
		"-dKeyLength=" + strconv.Itoa(s.keyLength()),
	}
	if p, ok := s.Permissions(); ok {
		params = append(params, "-dPermissions="+strconv.Itoa(p))
	}
	return params, nil
}

// Names returns every permission name, sorted.
func Names() []Permission {
	perms := make([]Permission, 0, len(codes))
	for p := range codes {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}
