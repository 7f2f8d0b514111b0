package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderReceipt(t *testing.T) {
	body := renderReceipt(Receipt{
		CustomerName:  "budi",
		CustomerEmail: "budi@example.com",
		TransactionId: "tx-1",
		EventName:     "Jazz Night",
		Amount:        "150000",
		PaidAt:        time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, body, "Thank you, budi!")
	assert.Contains(t, body, "Jazz Night")
	assert.Contains(t, body, "tx-1")
	assert.Contains(t, body, "150000")
	assert.Contains(t, body, "2024-01-05 09:30")
}

func TestRenderReceiptEscapesUserInput(t *testing.T) {
	body := renderReceipt(Receipt{
		CustomerName: `<a href="https://evil.example">click</a>`,
		EventName:    "Rock & <b>Roll</b>",
		PaidAt:       time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
	})

	assert.NotContains(t, body, `<a href="https://evil.example">`)
	assert.NotContains(t, body, "<b>Roll</b>")
	assert.Contains(t, body, "&lt;a href=&#34;https://evil.example&#34;&gt;click&lt;/a&gt;")
	assert.Contains(t, body, "Rock &amp; &lt;b&gt;Roll&lt;/b&gt;")
}
