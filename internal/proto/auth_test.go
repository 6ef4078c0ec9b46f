package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestAuthServiceDescriptor(t *testing.T) {
	svc := File_auth_proto.Services().ByName("AuthService")
	require.NotNil(t, svc)
	assert.Equal(t, protoreflect.FullName("palace.auth.v1.AuthService"), svc.FullName())
	assert.Equal(t, string(svc.FullName()), AuthService_ServiceDesc.ServiceName)

	var names []string
	for i := 0; i < svc.Methods().Len(); i++ {
		names = append(names, string(svc.Methods().Get(i).Name()))
	}
	assert.Equal(t, []string{"Signup", "Login", "GetMe", "UpdateRegions", "DeleteMe", "Ping"}, names)
	assert.Len(t, AuthService_ServiceDesc.Methods, len(names))
}

func TestUserJSONNames(t *testing.T) {
	fields := (&User{}).ProtoReflect().Descriptor().Fields()
	assert.Equal(t, "firstName", fields.ByName("first_name").JSONName())
	assert.Equal(t, "subscribedRegions", fields.ByName("subscribed_regions").JSONName())
}

func TestAuthResponseWireRoundTrip(t *testing.T) {
	in := &AuthResponse{
		Token: "tok",
		User: &User{
			Id:                "u1",
			Email:             "ama@example.com",
			FirstName:         "Ama",
			LastName:          "Mensah",
			Gender:            "female",
			SubscribedRegions: []string{"volta", "ashanti"},
		},
	}
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &AuthResponse{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out), "decoded response differs: %v", out)
	assert.Equal(t, "Mensah", out.GetUser().GetLastName())
}

func TestGettersAreNilSafe(t *testing.T) {
	var r *AuthResponse
	assert.Empty(t, r.GetToken())
	assert.Nil(t, r.GetUser())
	assert.Empty(t, r.GetUser().GetSubscribedRegions())
}
