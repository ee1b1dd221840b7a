package productv1

import (
	"encoding/json"
	"testing"
)

func TestProductUpdateRequestJSON(t *testing.T) {
	in := &ProductUpdateRequest{
		RequestId: "r1",
		Action: &CreateAction{Create: &CreateProductRequest{
			Name: "Widget", Price: 10, Quantity: 2, Category: "Tools",
		}},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out ProductUpdateRequest
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.RequestId != "r1" {
		t.Fatalf("request id = %q", out.RequestId)
	}
	create, ok := out.Action.(*CreateAction)
	if !ok {
		t.Fatalf("action decoded as %T, want *CreateAction", out.Action)
	}
	if create.Create.Name != "Widget" || create.Create.Price != 10 {
		t.Fatalf("payload mismatch: %+v", create.Create)
	}
}

func TestProductUpdateRequestJSONNoAction(t *testing.T) {
	var out ProductUpdateRequest
	if err := json.Unmarshal([]byte(`{"request_id":"r9"}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.RequestId != "r9" {
		t.Fatalf("request id = %q", out.RequestId)
	}
	if out.Action != nil {
		t.Fatalf("action = %T, want nil", out.Action)
	}
}

func TestProductUpdateRequestJSONVariants(t *testing.T) {
	cases := []struct {
		name   string
		action ProductAction
		key    string
	}{
		{name: "update", action: &UpdateAction{Update: &UpdateProductRequest{Id: "p1"}}, key: "update"},
		{name: "delete", action: &DeleteAction{Delete: &DeleteProductRequest{Id: "p1"}}, key: "delete"},
		{name: "get", action: &GetAction{Get: &GetProductRequest{Id: "p1"}}, key: "get"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(&ProductUpdateRequest{RequestId: "r1", Action: tc.action})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var env map[string]json.RawMessage
			if err := json.Unmarshal(data, &env); err != nil {
				t.Fatalf("unmarshal envelope: %v", err)
			}
			if _, ok := env[tc.key]; !ok {
				t.Fatalf("envelope missing %q key: %s", tc.key, data)
			}
			// Only the correlation key and the one action key are present.
			if len(env) != 2 {
				t.Fatalf("envelope has %d keys, want 2: %s", len(env), data)
			}
		})
	}
}
