package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

// delimiter joins record fields on a line. Field values must not contain
// it; there is no escaping in the file format.
const delimiter = ","

// Codec converts one record to and from a single delimited line of text.
type Codec[T any] interface {
	Encode(record T) string
	Decode(line string) (T, error)
}

// DecodeError reports a single malformed line. The repository logs it and
// drops the line from the loaded collection; it is never fatal.
type DecodeError struct {
	// Text is the offending line.
	Text string

	// Reason describes the structural problem.
	Reason string

	// Err is the underlying parse failure, if any.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %q: %s: %v", e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode %q: %s", e.Text, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// splitFields validates the common line structure: non-blank, exactly
// arity fields. Fields are trimmed of surrounding whitespace.
func splitFields(line string, arity int) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, &DecodeError{Text: line, Reason: "empty line"}
	}
	fields := strings.Split(line, delimiter)
	if len(fields) != arity {
		return nil, &DecodeError{
			Text:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", arity, len(fields)),
		}
	}
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields, nil
}

// ItemCodec encodes items as "id,name,price" with the price as decimal text.
type ItemCodec struct{}

func (ItemCodec) Encode(item models.Item) string {
	return strings.Join([]string{
		item.ID,
		item.Name,
		strconv.FormatFloat(item.Price, 'f', -1, 64),
	}, delimiter)
}

func (ItemCodec) Decode(line string) (models.Item, error) {
	fields, err := splitFields(line, 3)
	if err != nil {
		return models.Item{}, err
	}
	price, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return models.Item{}, &DecodeError{Text: line, Reason: "invalid price", Err: err}
	}
	return models.Item{ID: fields[0], Name: fields[1], Price: price}, nil
}

// UserCodec encodes users as "username,password,role". Unknown role text
// is kept as-is; login dispatch rejects it later.
type UserCodec struct{}

func (UserCodec) Encode(user models.User) string {
	return strings.Join([]string{
		user.Username,
		user.Password,
		string(user.Role),
	}, delimiter)
}

func (UserCodec) Decode(line string) (models.User, error) {
	fields, err := splitFields(line, 3)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		Username: fields[0],
		Password: fields[1],
		Role:     models.Role(fields[2]),
	}, nil
}
