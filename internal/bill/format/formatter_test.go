package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFormat(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	cases := []struct {
		name     string
		template string
		seq      int64
		want     string
	}{
		{name: "default", template: DefaultBillNumberTemplate, seq: 42, want: "BILL-20240309-000042"},
		{name: "plain sequence", template: "B{YY}{MM}-{SEQ}", seq: 7, want: "B2403-7"},
		{name: "sequence wider than padding", template: "{SEQ2}", seq: 1234, want: "1234"},
		{name: "literal only", template: "SHOP", seq: 1, want: "SHOP"},
		{name: "repeated tokens", template: "{DD}/{MM}/{YYYY}#{SEQ3}{SEQ}", seq: 5, want: "09/03/2024#0055"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl, err := Parse(tc.template)
			require.NoError(t, err)
			assert.Equal(t, tc.template, tpl.String())

			got, err := tpl.Format(at, tc.seq)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejectsBadTemplates(t *testing.T) {
	cases := []struct {
		template string
		want     error
	}{
		{template: "", want: ErrEmptyTemplate},
		{template: "   ", want: ErrEmptyTemplate},
		{template: "BILL-{HH}-{SEQ}", want: ErrUnknownToken},
		{template: "BILL-{SEQ0}", want: ErrUnknownToken},
		{template: "BILL-{SEQx}", want: ErrUnknownToken},
		{template: "BILL-{SEQ", want: ErrUnbalancedBrace},
		{template: "BILL-}{SEQ}", want: ErrUnbalancedBrace},
		{template: "BILL-{{SEQ}}", want: ErrUnbalancedBrace},
	}

	for _, tc := range cases {
		t.Run(tc.template, func(t *testing.T) {
			_, err := Parse(tc.template)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFormatRejectsNonPositiveSequence(t *testing.T) {
	tpl := MustParse(DefaultBillNumberTemplate)

	_, err := tpl.Format(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), 0)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestMustParsePanicsOnBadTemplate(t *testing.T) {
	assert.Panics(t, func() { MustParse("{NOPE}") })
}
