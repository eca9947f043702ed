package optional

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValue(t *testing.T) {

	t.Run("None works as intended", func(t *testing.T) {
		v := None[int]()
		if v.indirect != nil {
			t.Fatal("should be nil")
		}
	})

	t.Run("Some works as intended", func(t *testing.T) {

		t.Run("for nonzero nonpointer value", func(t *testing.T) {
			underlying := 12345
			v := Some(underlying)
			if v.indirect == nil || *v.indirect != underlying {
				t.Fatal("unexpected indirect")
			}
		})

		t.Run("for zero nonpointer value", func(t *testing.T) {
			underlying := 0
			v := Some(underlying)
			if v.indirect == nil || *v.indirect != underlying {
				t.Fatal("unexpected indirect")
			}
		})

		t.Run("for nonzero pointer value", func(t *testing.T) {
			underlying := 12345
			v := Some(&underlying)
			if v.indirect == nil || *v.indirect == nil || **v.indirect != underlying {
				t.Fatal("unexpected indirect")
			}
		})

		t.Run("for nil pointer value", func(t *testing.T) {
			var underlying *int
			v := Some(underlying)
			if v.indirect != nil {
				t.Fatal("unexpected indirect", *v.indirect)
			}
		})
	})

	t.Run("IsNone works as intended", func(t *testing.T) {
		if !None[int]().IsNone() {
			t.Fatal("expected none")
		}
		if Some(12345).IsNone() {
			t.Fatal("expected some")
		}
	})

	t.Run("Unwrap works as intended", func(t *testing.T) {

		t.Run("for some value", func(t *testing.T) {
			if v := Some(12345).Unwrap(); v != 12345 {
				t.Fatal("unexpected value", v)
			}
		})

		t.Run("for none value", func(t *testing.T) {
			defer func() {
				if recover() != ErrNoValue {
					t.Fatal("expected ErrNoValue panic")
				}
			}()
			_ = None[int]().Unwrap()
		})
	})

	t.Run("UnwrapOr works as intended", func(t *testing.T) {
		if v := None[int]().UnwrapOr(555); v != 555 {
			t.Fatal("unexpected value", v)
		}
		if v := Some(12345).UnwrapOr(555); v != 12345 {
			t.Fatal("unexpected value", v)
		}
	})

	t.Run("UnmarshalJSON works as intended", func(t *testing.T) {

		t.Run("with valid JSON input", func(t *testing.T) {
			type config struct {
				UID Value[int64]
			}
			input := []byte(`{"UID":12345}`)
			var state config
			if err := json.Unmarshal(input, &state); err != nil {
				t.Fatal(err)
			}
			if state.UID.indirect == nil || *state.UID.indirect != 12345 {
				t.Fatal("did not set indirect correctly")
			}
		})

		t.Run("with incompatible JSON input", func(t *testing.T) {
			type config struct {
				UID Value[int64]
			}
			input := []byte(`{"UID":[]}`)
			var state config
			if err := json.Unmarshal(input, &state); err == nil {
				t.Fatal("expected an error here")
			}
			if state.UID.indirect != nil {
				t.Fatal("should not have set", *state.UID.indirect)
			}
		})

		t.Run("with null JSON input", func(t *testing.T) {
			type config struct {
				UID Value[int64]
			}
			input := []byte(`{"UID":null}`)
			var state config
			if err := json.Unmarshal(input, &state); err != nil {
				t.Fatal(err)
			}
			if state.UID.indirect != nil {
				t.Fatal("should not have set", *state.UID.indirect)
			}
		})

		t.Run("with absent field", func(t *testing.T) {
			type config struct {
				UID Value[int64]
			}
			input := []byte(`{}`)
			var state config
			if err := json.Unmarshal(input, &state); err != nil {
				t.Fatal(err)
			}
			if !state.UID.IsNone() {
				t.Fatal("should be none")
			}
		})
	})

	t.Run("MarshalJSON works as intended", func(t *testing.T) {

		t.Run("for an empty Value", func(t *testing.T) {
			got, err := json.Marshal(None[int]())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]byte(`null`), got); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("for a nonempty Value", func(t *testing.T) {
			got, err := json.Marshal(Some(12345))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]byte(`12345`), got); diff != "" {
				t.Fatal(diff)
			}
		})
	})
}
