package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Inquiry - обращение посетителя по объявлению. Доставка - сторонний
// транспорт без гарантий; при неудаче формируется mailto-фолбэк.
type Inquiry struct {
	Name             string
	Email            string
	Phone            string
	Message          string
	PropertyTitle    string
	PropertyLocation string
	PropertyPrice    string
	PropertyType     string
	PropertyLink     string
	InquiryType      string
}

// Validate проверяет минимально необходимые поля обращения.
func (i *Inquiry) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(i.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if strings.TrimSpace(i.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return nil
}

// MailtoFallback собирает готовую ссылку на почтовый клиент с предзаполненным
// письмом - ручной запасной канал, если транспорт недоступен.
func (i *Inquiry) MailtoFallback(recipient string) string {
	subject := "Property inquiry"
	if i.PropertyTitle != "" {
		subject = "Inquiry: " + i.PropertyTitle
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\nEmail: %s\nPhone: %s\n", i.Name, i.Email, i.Phone)
	if i.PropertyTitle != "" {
		fmt.Fprintf(&body, "Property: %s\n", i.PropertyTitle)
	}
	if i.PropertyLink != "" {
		fmt.Fprintf(&body, "Link: %s\n", i.PropertyLink)
	}
	fmt.Fprintf(&body, "\n%s\n", i.Message)

	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body.String())
	return "mailto:" + recipient + "?" + params.Encode()
}
