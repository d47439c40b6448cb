package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCmdInspect(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"inspect", aliceKusama, aliceSubstrate, bobPolkadot}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("unexpected failure: %s", stderr.String())
	}

	const want = "" +
		"address                                           format  network   account id\n" +
		"HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F   2       kusama    d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d\n" +
		"5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY  42      unknown   d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d\n" +
		"14E5nqKAp3oAJcmzgZhUD2RcptBeUBScxKHgJKU4HPNcKVf3  0       polkadot  8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48\n"
	if got := stdout.String(); got != want {
		t.Logf("want: %s", want)
		t.Logf(" got: %s", got)
		t.Fatal("unexpected table")
	}
}

func TestCmdInspectIgnoresNetwork(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"inspect", "--network", "polkadot", "--header=false", aliceKusama}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("unexpected failure: %s", stderr.String())
	}
	const want = "HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F  2  kusama  d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d\n"
	if got := stdout.String(); got != want {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestCmdInspectInvalidAddress(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"inspect", aliceKusama, "not-an-address"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("want failure, got %d exit code", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("partial output written: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), `field "Addresses.1"`) {
		t.Fatalf("failing address not named: %s", stderr.String())
	}
}
