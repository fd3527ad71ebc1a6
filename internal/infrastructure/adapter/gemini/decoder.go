package gemini

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/analyst"
)

// errMalformed marks an answer that parsed but broke the schema
var errMalformed = errors.New("malformed analyst response")

// verdictPayload mirrors verdictSchema. Pointers tell a missing field from a zero value.
type verdictPayload struct {
	Prediction *string  `json:"prediction" validate:"required,notblank,max=128"`
	Odds       *float64 `json:"odds" validate:"required,gt=0"`
	Confidence *float64 `json:"confidence" validate:"required,gte=0,lte=100"`
	Analysis   *string  `json:"analysis" validate:"required,notblank"`
	IsElite    *bool    `json:"isElite" validate:"required"`
}

type pickPayload struct {
	HomeTeam *string `json:"homeTeam" validate:"required,notblank,max=128"`
	AwayTeam *string `json:"awayTeam" validate:"required,notblank,max=128"`
	League   *string `json:"league" validate:"required,notblank,max=128"`
	verdictPayload
}

func (p verdictPayload) verdict() entity.Verdict {
	return entity.Verdict{
		Prediction: strings.TrimSpace(*p.Prediction),
		Odds:       *p.Odds,
		Confidence: *p.Confidence,
		Analysis:   strings.TrimSpace(*p.Analysis),
		IsElite:    *p.IsElite,
	}
}

// decoder turns model text into domain values, rejecting anything off-schema
type decoder struct {
	validate *validator.Validate
}

func newDecoder() *decoder {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &decoder{validate: v}
}

// unmarshalStrict decodes a single JSON value and refuses unknown fields or trailing data
func unmarshalStrict(text string, out any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(stripFence(text))))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %s", errMalformed, err.Error())
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON value", errMalformed)
	}
	return nil
}

// stripFence removes a markdown code fence some models wrap JSON in
func stripFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

func (d *decoder) decodeVerdict(text string) (*entity.Verdict, error) {
	var payload verdictPayload
	if err := unmarshalStrict(text, &payload); err != nil {
		return nil, err
	}
	if err := d.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", errMalformed, err.Error())
	}
	v := payload.verdict()
	return &v, nil
}

// decodePicks accepts between one and max picks; extra picks are dropped
func (d *decoder) decodePicks(text string, max int) ([]analyst.Pick, error) {
	var payloads []pickPayload
	if err := unmarshalStrict(text, &payloads); err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: no picks returned", errMalformed)
	}
	if len(payloads) > max {
		payloads = payloads[:max]
	}

	picks := make([]analyst.Pick, 0, len(payloads))
	for i, p := range payloads {
		if err := d.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: pick %d: %s", errMalformed, i, err.Error())
		}
		fixture := entity.Fixture{HomeTeam: *p.HomeTeam, AwayTeam: *p.AwayTeam, League: *p.League}.Normalize()
		picks = append(picks, analyst.Pick{Fixture: fixture, Verdict: p.verdict()})
	}
	return picks, nil
}
