package productv1

import (
	"encoding/json"
	"fmt"
)

// ProductAction is the closed variant set carried by a ProductUpdateRequest.
// Exactly one of the four action types is set per message; handlers dispatch
// with a type switch so a new variant cannot be added without touching every
// dispatch site.
type ProductAction interface {
	isProductAction()
}

type CreateAction struct {
	Create *CreateProductRequest
}

type UpdateAction struct {
	Update *UpdateProductRequest
}

type DeleteAction struct {
	Delete *DeleteProductRequest
}

type GetAction struct {
	Get *GetProductRequest
}

func (*CreateAction) isProductAction() {}
func (*UpdateAction) isProductAction() {}
func (*DeleteAction) isProductAction() {}
func (*GetAction) isProductAction()    {}

// ProductUpdateRequest is one inbound message on the ProductUpdates stream.
// RequestId is a client-supplied correlation key echoed verbatim on the
// paired response. Action may be nil when the client set no action key.
type ProductUpdateRequest struct {
	RequestId string
	Action    ProductAction
}

// productUpdateEnvelope is the flat JSON shape of ProductUpdateRequest: the
// correlation key plus at most one of the four action keys.
type productUpdateEnvelope struct {
	RequestId string                `json:"request_id"`
	Create    *CreateProductRequest `json:"create,omitempty"`
	Update    *UpdateProductRequest `json:"update,omitempty"`
	Delete    *DeleteProductRequest `json:"delete,omitempty"`
	Get       *GetProductRequest    `json:"get,omitempty"`
}

func (r *ProductUpdateRequest) MarshalJSON() ([]byte, error) {
	env := productUpdateEnvelope{RequestId: r.RequestId}
	switch a := r.Action.(type) {
	case nil:
	case *CreateAction:
		env.Create = a.Create
	case *UpdateAction:
		env.Update = a.Update
	case *DeleteAction:
		env.Delete = a.Delete
	case *GetAction:
		env.Get = a.Get
	default:
		return nil, fmt.Errorf("productv1: unknown action type %T", r.Action)
	}
	return json.Marshal(env)
}

func (r *ProductUpdateRequest) UnmarshalJSON(data []byte) error {
	var env productUpdateEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	r.RequestId = env.RequestId
	r.Action = nil
	switch {
	case env.Create != nil:
		r.Action = &CreateAction{Create: env.Create}
	case env.Update != nil:
		r.Action = &UpdateAction{Update: env.Update}
	case env.Delete != nil:
		r.Action = &DeleteAction{Delete: env.Delete}
	case env.Get != nil:
		r.Action = &GetAction{Get: env.Get}
	}
	return nil
}
