package errors

import (
	"strings"
	"testing"

	"github.com/gostdlib/base/context"
)

func TestUsageErrorText(t *testing.T) {
	tests := []struct {
		name string
		u    *UsageError
		want string
	}{
		{
			name: "wrong type",
			u: &UsageError{
				Method:      "reflect.Message.GetInt32",
				MessageType: "protobuf_unittest.TestAllTypes",
				Field:       "protobuf_unittest.TestAllTypes.optional_int64",
				Problem:     ProblemWrongType,
				Expected:    "int32",
				Actual:      "int64",
			},
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.GetInt32\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.TestAllTypes.optional_int64\n" +
				"  Problem     : Field is not the right type for this message:\n" +
				"    Expected  : int32\n" +
				"    Field type: int64",
		},
		{
			name: "wrong message",
			u: &UsageError{
				Method:      "reflect.Message.HasField",
				MessageType: "protobuf_unittest.TestAllTypes",
				Field:       "protobuf_unittest.ForeignMessage.c",
				Problem:     ProblemWrongMessage,
			},
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.HasField\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.ForeignMessage.c\n" +
				"  Problem     : Field does not match message type.",
		},
	}

	for _, test := range tests {
		if got := test.u.Error(); got != test.want {
			t.Errorf("TestUsageErrorText(%s): got\n%s\nwant\n%s", test.name, got, test.want)
		}
	}
}

func TestRecoverUsage(t *testing.T) {
	u := RecoverUsage(func() { Usage(&UsageError{Problem: ProblemIndex}) })
	if u == nil || u.Problem != ProblemIndex {
		t.Fatalf("TestRecoverUsage: got %v, want a UsageError with ProblemIndex", u)
	}
	if RecoverUsage(func() {}) != nil {
		t.Errorf("TestRecoverUsage: a function that returns normally should give nil")
	}

	defer func() {
		if r := recover(); r != "other" {
			t.Errorf("TestRecoverUsage: non-usage panic was not re-raised, got %v", r)
		}
	}()
	RecoverUsage(func() { panic("other") })
}

func TestE(t *testing.T) {
	var err error = E(context.Background(), CatUser, TypeWire, New("bad varint"))
	if err == nil {
		t.Fatalf("TestE: E() returned nil")
	}
	if !strings.Contains(err.Error(), "bad varint") {
		t.Errorf("TestE: error %q does not contain the wrapped message", err.Error())
	}
}
