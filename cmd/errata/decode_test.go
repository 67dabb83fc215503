package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"errata/internal/errcode"
	"errata/internal/glossary"
)

func TestParseCode(t *testing.T) {
	neg := errcode.Pack(errcode.Fields{Attr: errcode.AttrFull})
	cases := []struct {
		in   string
		want errcode.Code
	}{
		{fmt.Sprintf("%d", int64(neg)), neg},
		{fmt.Sprintf("0x%x", uint64(neg)), neg},
		{neg.String(), neg}, // ERR_0x spelling round-trips
		{"0", 0},
		{"42", 42},
		{" -1 ", -1},
	}
	for _, tc := range cases {
		got, err := parseCode(tc.in)
		if err != nil {
			t.Fatalf("parseCode(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseCode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "nope", "0xzz", "99999999999999999999999"} {
		if _, err := parseCode(bad); err == nil {
			t.Fatalf("parseCode(%q) accepted garbage", bad)
		}
	}
}

func TestDecodeShortFormat(t *testing.T) {
	disk, _ := glossary.DemoCode("DISK")
	c := errcode.New(0, 0, 0, errcode.AttrFull.Desc().WithNoun(disk))

	if err := decodeCmd.Flags().Set("format", "short"); err != nil {
		t.Fatal(err)
	}
	defer decodeCmd.Flags().Set("format", "pretty")

	var buf bytes.Buffer
	decodeCmd.SetOut(&buf)
	if err := runDecode(decodeCmd, []string{fmt.Sprintf("%d", int64(c))}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "DISK FULL") {
		t.Fatalf("decode output %q misses the message", got)
	}
	if !strings.HasPrefix(got, c.String()) {
		t.Fatalf("decode output %q misses the raw code", got)
	}
}

func TestDecodeRejectsBadFormat(t *testing.T) {
	if err := decodeCmd.Flags().Set("format", "yaml"); err != nil {
		t.Fatal(err)
	}
	defer decodeCmd.Flags().Set("format", "pretty")

	if err := runDecode(decodeCmd, []string{"0"}); err == nil {
		t.Fatal("unknown format accepted")
	}
}
