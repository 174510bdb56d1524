// Package benchmark compares the schema-driven compact-protocol engine against
// protobuf's schema-driven path (dynamicpb), the closest equivalent: both
// decode through a runtime descriptor with no generated code.
package benchmark

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/anirudhraja/thriftlite"
	"github.com/anirudhraja/thriftlite/registry"
	"github.com/anirudhraja/thriftlite/schema"
)

// Shared fixtures, built once in init.
var (
	thriftClient  *thriftlite.Thriftlite
	thriftUser    map[string]interface{}
	thriftPayload []byte

	protoDescriptor protoreflect.MessageDescriptor
	protoUser       *dynamicpb.Message
	protoPayload    []byte
)

func init() {
	setupThriftlite()
	setupDynamicpb()
}

func setupThriftlite() {
	thriftClient = thriftlite.New()

	err := registry.NewStructBuilder("User").
		Field("id", registry.Primitive(schema.TypeI64)).
		Field("name", registry.Primitive(schema.TypeString)).
		Field("active", registry.Primitive(schema.TypeBool)).
		Field("score", registry.Primitive(schema.TypeDouble)).
		Field("tags", registry.List(registry.Primitive(schema.TypeString))).
		Register(thriftClient.GetRegistry())
	if err != nil {
		panic("failed to register User: " + err.Error())
	}

	thriftUser = map[string]interface{}{
		"id":     int64(123456789),
		"name":   "John Doe",
		"active": true,
		"score":  97.25,
		"tags":   []string{"premium", "verified", "beta"},
	}

	thriftPayload, err = thriftClient.Marshal(thriftUser, "User")
	if err != nil {
		panic("failed to build payload: " + err.Error())
	}
}

func setupDynamicpb() {
	// The same User shape as a runtime-built proto descriptor.
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("bench.proto"),
		Package: proto.String("bench"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("User"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:     proto.String("id"),
						Number:   proto.Int32(1),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_INT64.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						JsonName: proto.String("id"),
					},
					{
						Name:     proto.String("name"),
						Number:   proto.Int32(2),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						JsonName: proto.String("name"),
					},
					{
						Name:     proto.String("active"),
						Number:   proto.Int32(3),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						JsonName: proto.String("active"),
					},
					{
						Name:     proto.String("score"),
						Number:   proto.Int32(4),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						JsonName: proto.String("score"),
					},
					{
						Name:     proto.String("tags"),
						Number:   proto.Int32(5),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						JsonName: proto.String("tags"),
					},
				},
			},
		},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	if err != nil {
		panic("failed to build proto descriptor: " + err.Error())
	}
	protoDescriptor = fd.Messages().ByName("User")

	protoUser = dynamicpb.NewMessage(protoDescriptor)
	fields := protoDescriptor.Fields()
	protoUser.Set(fields.ByName("id"), protoreflect.ValueOfInt64(123456789))
	protoUser.Set(fields.ByName("name"), protoreflect.ValueOfString("John Doe"))
	protoUser.Set(fields.ByName("active"), protoreflect.ValueOfBool(true))
	protoUser.Set(fields.ByName("score"), protoreflect.ValueOfFloat64(97.25))
	tags := protoUser.NewField(fields.ByName("tags")).List()
	for _, tag := range []string{"premium", "verified", "beta"} {
		tags.Append(protoreflect.ValueOfString(tag))
	}
	protoUser.Set(fields.ByName("tags"), protoreflect.ValueOfList(tags))

	protoPayload, err = proto.Marshal(protoUser)
	if err != nil {
		panic("failed to build proto payload: " + err.Error())
	}
}

// ===== MARSHAL =====

func BenchmarkThriftlite_Marshal(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := thriftClient.Marshal(thriftUser, "User"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDynamicpb_Marshal(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := proto.Marshal(protoUser); err != nil {
			b.Fatal(err)
		}
	}
}

// ===== UNMARSHAL =====

func BenchmarkThriftlite_Parse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := thriftClient.Parse(thriftPayload, "User"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDynamicpb_Unmarshal(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		msg := dynamicpb.NewMessage(protoDescriptor)
		if err := proto.Unmarshal(protoPayload, msg); err != nil {
			b.Fatal(err)
		}
	}
}

// ===== SCHEMA-LESS PATHS =====

func BenchmarkThriftlite_Skip(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := thriftClient.Skip(thriftPayload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkThriftlite_Dump(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := thriftClient.Dump(thriftPayload); err != nil {
			b.Fatal(err)
		}
	}
}

// TestPayloadEquivalence sanity-checks that both engines carry the same data
// before any numbers are compared.
func TestPayloadEquivalence(t *testing.T) {
	decoded, err := thriftClient.Parse(thriftPayload, "User")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if decoded["id"] != int64(123456789) || decoded["name"] != "John Doe" {
		t.Fatalf("thriftlite payload mismatch: %#v", decoded)
	}

	msg := dynamicpb.NewMessage(protoDescriptor)
	if err := proto.Unmarshal(protoPayload, msg); err != nil {
		t.Fatalf("proto.Unmarshal: %v", err)
	}
	if msg.Get(protoDescriptor.Fields().ByName("id")).Int() != 123456789 {
		t.Fatal("proto payload mismatch")
	}

	t.Logf("payload sizes: thriftlite=%d bytes, protobuf=%d bytes", len(thriftPayload), len(protoPayload))
}
