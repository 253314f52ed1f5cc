package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"passwordreset/internal/domain"
)

type SendMailRequest struct {
	Email string `json:"email"`
}

type VerifyRequest struct {
	Email   string   `json:"email"`
	VerCode FlexCode `json:"vercode"`
}

type VerifyResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// FlexCode accepts the verification code either as a JSON number or as a
// string and normalizes it to text for comparison.
type FlexCode string

func (c *FlexCode) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*c = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*c = FlexCode(strings.TrimSpace(str))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Whole JSON numbers come back as "1234"; anything fractional is kept
	// verbatim and will simply fail the comparison.
	if i, err := n.Int64(); err == nil {
		*c = FlexCode(strconv.FormatInt(i, 10))
		return nil
	}
	*c = FlexCode(n.String())
	return nil
}

func (c FlexCode) String() string { return string(c) }
