// Bidirectional chat stream schema.
// Generate with:
//   protoc --go_out=. --go_opt=paths=source_relative \
//          --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//          proto/chat/chat.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/chat/chat.proto

package chat

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ClientHello struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	// Creation time of the newest message the client already holds,
	// RFC 3339. Empty means the client has nothing.
	LastSeenMessageIso string `protobuf:"bytes,2,opt,name=last_seen_message_iso,json=lastSeenMessageIso,proto3" json:"last_seen_message_iso,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ClientHello) Reset() {
	*x = ClientHello{}
	mi := &file_proto_chat_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientHello) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientHello) ProtoMessage() {}

func (x *ClientHello) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientHello.ProtoReflect.Descriptor instead.
func (*ClientHello) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{0}
}

func (x *ClientHello) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *ClientHello) GetLastSeenMessageIso() string {
	if x != nil {
		return x.LastSeenMessageIso
	}
	return ""
}

type ClientSend struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ConversationId string                 `protobuf:"bytes,1,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	UserId         string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Text           string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ClientSend) Reset() {
	*x = ClientSend{}
	mi := &file_proto_chat_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientSend) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientSend) ProtoMessage() {}

func (x *ClientSend) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientSend.ProtoReflect.Descriptor instead.
func (*ClientSend) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{1}
}

func (x *ClientSend) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *ClientSend) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ClientSend) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ClientAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClientAck) Reset() {
	*x = ClientAck{}
	mi := &file_proto_chat_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientAck) ProtoMessage() {}

func (x *ClientAck) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientAck.ProtoReflect.Descriptor instead.
func (*ClientAck) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{2}
}

type ChatClientEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Kind:
	//
	//	*ChatClientEvent_Hello
	//	*ChatClientEvent_Send
	//	*ChatClientEvent_Ack
	Kind          isChatClientEvent_Kind `protobuf_oneof:"kind"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatClientEvent) Reset() {
	*x = ChatClientEvent{}
	mi := &file_proto_chat_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatClientEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatClientEvent) ProtoMessage() {}

func (x *ChatClientEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatClientEvent.ProtoReflect.Descriptor instead.
func (*ChatClientEvent) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{3}
}

func (x *ChatClientEvent) GetKind() isChatClientEvent_Kind {
	if x != nil {
		return x.Kind
	}
	return nil
}

func (x *ChatClientEvent) GetHello() *ClientHello {
	if x != nil {
		if x, ok := x.Kind.(*ChatClientEvent_Hello); ok {
			return x.Hello
		}
	}
	return nil
}

func (x *ChatClientEvent) GetSend() *ClientSend {
	if x != nil {
		if x, ok := x.Kind.(*ChatClientEvent_Send); ok {
			return x.Send
		}
	}
	return nil
}

func (x *ChatClientEvent) GetAck() *ClientAck {
	if x != nil {
		if x, ok := x.Kind.(*ChatClientEvent_Ack); ok {
			return x.Ack
		}
	}
	return nil
}

type isChatClientEvent_Kind interface {
	isChatClientEvent_Kind()
}

type ChatClientEvent_Hello struct {
	Hello *ClientHello `protobuf:"bytes,1,opt,name=hello,proto3,oneof"`
}

type ChatClientEvent_Send struct {
	Send *ClientSend `protobuf:"bytes,2,opt,name=send,proto3,oneof"`
}

type ChatClientEvent_Ack struct {
	Ack *ClientAck `protobuf:"bytes,3,opt,name=ack,proto3,oneof"`
}

func (*ChatClientEvent_Hello) isChatClientEvent_Kind() {}

func (*ChatClientEvent_Send) isChatClientEvent_Kind() {}

func (*ChatClientEvent_Ack) isChatClientEvent_Kind() {}

type Message struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	MessageId      string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	ConversationId string                 `protobuf:"bytes,2,opt,name=conversation_id,json=conversationId,proto3" json:"conversation_id,omitempty"`
	SenderId       string                 `protobuf:"bytes,3,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Text           string                 `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	CreatedAtIso   string                 `protobuf:"bytes,5,opt,name=created_at_iso,json=createdAtIso,proto3" json:"created_at_iso,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Message) Reset() {
	*x = Message{}
	mi := &file_proto_chat_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Message) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Message.ProtoReflect.Descriptor instead.
func (*Message) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{4}
}

func (x *Message) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *Message) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *Message) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *Message) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Message) GetCreatedAtIso() string {
	if x != nil {
		return x.CreatedAtIso
	}
	return ""
}

type ServerBackfill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*Message             `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerBackfill) Reset() {
	*x = ServerBackfill{}
	mi := &file_proto_chat_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerBackfill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerBackfill) ProtoMessage() {}

func (x *ServerBackfill) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerBackfill.ProtoReflect.Descriptor instead.
func (*ServerBackfill) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{5}
}

func (x *ServerBackfill) GetMessages() []*Message {
	if x != nil {
		return x.Messages
	}
	return nil
}

type ServerAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	MessageId     string                 `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerAck) Reset() {
	*x = ServerAck{}
	mi := &file_proto_chat_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerAck) ProtoMessage() {}

func (x *ServerAck) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerAck.ProtoReflect.Descriptor instead.
func (*ServerAck) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{6}
}

func (x *ServerAck) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ServerAck) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *ServerAck) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ServerHeartbeat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ServerTimeIso string                 `protobuf:"bytes,1,opt,name=server_time_iso,json=serverTimeIso,proto3" json:"server_time_iso,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerHeartbeat) Reset() {
	*x = ServerHeartbeat{}
	mi := &file_proto_chat_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerHeartbeat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerHeartbeat) ProtoMessage() {}

func (x *ServerHeartbeat) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerHeartbeat.ProtoReflect.Descriptor instead.
func (*ServerHeartbeat) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{7}
}

func (x *ServerHeartbeat) GetServerTimeIso() string {
	if x != nil {
		return x.ServerTimeIso
	}
	return ""
}

type ChatServerEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Kind:
	//
	//	*ChatServerEvent_Backfill
	//	*ChatServerEvent_Ack
	//	*ChatServerEvent_Heartbeat
	Kind          isChatServerEvent_Kind `protobuf_oneof:"kind"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatServerEvent) Reset() {
	*x = ChatServerEvent{}
	mi := &file_proto_chat_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatServerEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatServerEvent) ProtoMessage() {}

func (x *ChatServerEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_chat_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatServerEvent.ProtoReflect.Descriptor instead.
func (*ChatServerEvent) Descriptor() ([]byte, []int) {
	return file_proto_chat_chat_proto_rawDescGZIP(), []int{8}
}

func (x *ChatServerEvent) GetKind() isChatServerEvent_Kind {
	if x != nil {
		return x.Kind
	}
	return nil
}

func (x *ChatServerEvent) GetBackfill() *ServerBackfill {
	if x != nil {
		if x, ok := x.Kind.(*ChatServerEvent_Backfill); ok {
			return x.Backfill
		}
	}
	return nil
}

func (x *ChatServerEvent) GetAck() *ServerAck {
	if x != nil {
		if x, ok := x.Kind.(*ChatServerEvent_Ack); ok {
			return x.Ack
		}
	}
	return nil
}

func (x *ChatServerEvent) GetHeartbeat() *ServerHeartbeat {
	if x != nil {
		if x, ok := x.Kind.(*ChatServerEvent_Heartbeat); ok {
			return x.Heartbeat
		}
	}
	return nil
}

type isChatServerEvent_Kind interface {
	isChatServerEvent_Kind()
}

type ChatServerEvent_Backfill struct {
	Backfill *ServerBackfill `protobuf:"bytes,1,opt,name=backfill,proto3,oneof"`
}

type ChatServerEvent_Ack struct {
	Ack *ServerAck `protobuf:"bytes,2,opt,name=ack,proto3,oneof"`
}

type ChatServerEvent_Heartbeat struct {
	Heartbeat *ServerHeartbeat `protobuf:"bytes,3,opt,name=heartbeat,proto3,oneof"`
}

func (*ChatServerEvent_Backfill) isChatServerEvent_Kind() {}

func (*ChatServerEvent_Ack) isChatServerEvent_Kind() {}

func (*ChatServerEvent_Heartbeat) isChatServerEvent_Kind() {}

var File_proto_chat_chat_proto protoreflect.FileDescriptor

const file_proto_chat_chat_proto_rawDesc = "" +
	"\n" +
	"\x15proto/chat/chat.proto\x12\x11chatravel.chat.v1\"i\n" +
	"\vClientHello\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x121\n" +
	"\x15last_seen_message_iso\x18\x02 \x01(\tR\x12lastSeenMessageIso\"b\n" +
	"\n" +
	"ClientSend\x12'\n" +
	"\x0fconversation_id\x18\x01 \x01(\tR\x0econversationId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\"\v\n" +
	"\tClientAck\"\xb8\x01\n" +
	"\x0fChatClientEvent\x126\n" +
	"\x05hello\x18\x01 \x01(\v2\x1e.chatravel.chat.v1.ClientHelloH\x00R\x05hello\x123\n" +
	"\x04send\x18\x02 \x01(\v2\x1d.chatravel.chat.v1.ClientSendH\x00R\x04send\x120\n" +
	"\x03ack\x18\x03 \x01(\v2\x1c.chatravel.chat.v1.ClientAckH\x00R\x03ackB\x06\n" +
	"\x04kind\"\xa8\x01\n" +
	"\aMessage\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12'\n" +
	"\x0fconversation_id\x18\x02 \x01(\tR\x0econversationId\x12\x1b\n" +
	"\tsender_id\x18\x03 \x01(\tR\bsenderId\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12$\n" +
	"\x0ecreated_at_iso\x18\x05 \x01(\tR\fcreatedAtIso\"H\n" +
	"\x0eServerBackfill\x126\n" +
	"\bmessages\x18\x01 \x03(\v2\x1a.chatravel.chat.v1.MessageR\bmessages\"P\n" +
	"\tServerAck\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12\x1d\n" +
	"\n" +
	"message_id\x18\x02 \x01(\tR\tmessageId\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"9\n" +
	"\x0fServerHeartbeat\x12&\n" +
	"\x0fserver_time_iso\x18\x01 \x01(\tR\rserverTimeIso\"\xd0\x01\n" +
	"\x0fChatServerEvent\x12?\n" +
	"\bbackfill\x18\x01 \x01(\v2!.chatravel.chat.v1.ServerBackfillH\x00R\bbackfill\x120\n" +
	"\x03ack\x18\x02 \x01(\v2\x1c.chatravel.chat.v1.ServerAckH\x00R\x03ack\x12B\n" +
	"\theartbeat\x18\x03 \x01(\v2\".chatravel.chat.v1.ServerHeartbeatH\x00R\theartbeatB\x06\n" +
	"\x04kind2g\n" +
	"\vChatService\x12X\n" +
	"\n" +
	"ChatStream\x12\".chatravel.chat.v1.ChatClientEvent\x1a\".chatravel.chat.v1.ChatServerEvent(\x010\x01B\x16Z\x14chatravel/proto/chatb\x06proto3"

var (
	file_proto_chat_chat_proto_rawDescOnce sync.Once
	file_proto_chat_chat_proto_rawDescData []byte
)

func file_proto_chat_chat_proto_rawDescGZIP() []byte {
	file_proto_chat_chat_proto_rawDescOnce.Do(func() {
		file_proto_chat_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_chat_chat_proto_rawDesc), len(file_proto_chat_chat_proto_rawDesc)))
	})
	return file_proto_chat_chat_proto_rawDescData
}

var file_proto_chat_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_proto_chat_chat_proto_goTypes = []any{
	(*ClientHello)(nil),     // 0: chatravel.chat.v1.ClientHello
	(*ClientSend)(nil),      // 1: chatravel.chat.v1.ClientSend
	(*ClientAck)(nil),       // 2: chatravel.chat.v1.ClientAck
	(*ChatClientEvent)(nil), // 3: chatravel.chat.v1.ChatClientEvent
	(*Message)(nil),         // 4: chatravel.chat.v1.Message
	(*ServerBackfill)(nil),  // 5: chatravel.chat.v1.ServerBackfill
	(*ServerAck)(nil),       // 6: chatravel.chat.v1.ServerAck
	(*ServerHeartbeat)(nil), // 7: chatravel.chat.v1.ServerHeartbeat
	(*ChatServerEvent)(nil), // 8: chatravel.chat.v1.ChatServerEvent
}
var file_proto_chat_chat_proto_depIdxs = []int32{
	0, // 0: chatravel.chat.v1.ChatClientEvent.hello:type_name -> chatravel.chat.v1.ClientHello
	1, // 1: chatravel.chat.v1.ChatClientEvent.send:type_name -> chatravel.chat.v1.ClientSend
	2, // 2: chatravel.chat.v1.ChatClientEvent.ack:type_name -> chatravel.chat.v1.ClientAck
	4, // 3: chatravel.chat.v1.ServerBackfill.messages:type_name -> chatravel.chat.v1.Message
	5, // 4: chatravel.chat.v1.ChatServerEvent.backfill:type_name -> chatravel.chat.v1.ServerBackfill
	6, // 5: chatravel.chat.v1.ChatServerEvent.ack:type_name -> chatravel.chat.v1.ServerAck
	7, // 6: chatravel.chat.v1.ChatServerEvent.heartbeat:type_name -> chatravel.chat.v1.ServerHeartbeat
	3, // 7: chatravel.chat.v1.ChatService.ChatStream:input_type -> chatravel.chat.v1.ChatClientEvent
	8, // 8: chatravel.chat.v1.ChatService.ChatStream:output_type -> chatravel.chat.v1.ChatServerEvent
	8, // [8:9] is the sub-list for method output_type
	7, // [7:8] is the sub-list for method input_type
	7, // [7:7] is the sub-list for extension type_name
	7, // [7:7] is the sub-list for extension extendee
	0, // [0:7] is the sub-list for field type_name
}

func init() { file_proto_chat_chat_proto_init() }
func file_proto_chat_chat_proto_init() {
	if File_proto_chat_chat_proto != nil {
		return
	}
	file_proto_chat_chat_proto_msgTypes[3].OneofWrappers = []any{
		(*ChatClientEvent_Hello)(nil),
		(*ChatClientEvent_Send)(nil),
		(*ChatClientEvent_Ack)(nil),
	}
	file_proto_chat_chat_proto_msgTypes[8].OneofWrappers = []any{
		(*ChatServerEvent_Backfill)(nil),
		(*ChatServerEvent_Ack)(nil),
		(*ChatServerEvent_Heartbeat)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_chat_chat_proto_rawDesc), len(file_proto_chat_chat_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_chat_chat_proto_goTypes,
		DependencyIndexes: file_proto_chat_chat_proto_depIdxs,
		MessageInfos:      file_proto_chat_chat_proto_msgTypes,
	}.Build()
	File_proto_chat_chat_proto = out.File
	file_proto_chat_chat_proto_goTypes = nil
	file_proto_chat_chat_proto_depIdxs = nil
}
