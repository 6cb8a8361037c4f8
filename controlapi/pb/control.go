package pb

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified grpc service name.
const ServiceName = "nostrss.Control"

const (
	MethodState         = "/nostrss.Control/State"
	MethodFeedsList     = "/nostrss.Control/FeedsList"
	MethodFeedInfo      = "/nostrss.Control/FeedInfo"
	MethodAddFeed       = "/nostrss.Control/AddFeed"
	MethodDeleteFeed    = "/nostrss.Control/DeleteFeed"
	MethodProfilesList  = "/nostrss.Control/ProfilesList"
	MethodProfileInfo   = "/nostrss.Control/ProfileInfo"
	MethodAddProfile    = "/nostrss.Control/AddProfile"
	MethodDeleteProfile = "/nostrss.Control/DeleteProfile"
	MethodStartJob      = "/nostrss.Control/StartJob"
	MethodStopJob       = "/nostrss.Control/StopJob"
)

// ControlServer is the server contract of the control plane.
type ControlServer interface {
	State(context.Context, *StateRequest) (*StateResponse, error)
	FeedsList(context.Context, *FeedsListRequest) (*FeedsListResponse, error)
	FeedInfo(context.Context, *FeedInfoRequest) (*FeedInfoResponse, error)
	AddFeed(context.Context, *AddFeedRequest) (*AddFeedResponse, error)
	DeleteFeed(context.Context, *DeleteFeedRequest) (*DeleteFeedResponse, error)
	ProfilesList(context.Context, *ProfilesListRequest) (*ProfilesListResponse, error)
	ProfileInfo(context.Context, *ProfileInfoRequest) (*ProfileInfoResponse, error)
	AddProfile(context.Context, *AddProfileRequest) (*AddProfileResponse, error)
	DeleteProfile(context.Context, *DeleteProfileRequest) (*DeleteProfileResponse, error)
	StartJob(context.Context, *StartJobRequest) (*StartJobResponse, error)
	StopJob(context.Context, *StopJobRequest) (*StopJobResponse, error)
}

// RegisterControlServer registers the Control service implementation
// with a grpc server.
func RegisterControlServer(s grpc.ServiceRegistrar, srv ControlServer) {
	s.RegisterService(&Control_ServiceDesc, srv)
}

func _Control_State_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).State(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodState}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).State(ctx, req.(*StateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_FeedsList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FeedsListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).FeedsList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodFeedsList}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).FeedsList(ctx, req.(*FeedsListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_FeedInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FeedInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).FeedInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodFeedInfo}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).FeedInfo(ctx, req.(*FeedInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_AddFeed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddFeedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).AddFeed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodAddFeed}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).AddFeed(ctx, req.(*AddFeedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_DeleteFeed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFeedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).DeleteFeed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodDeleteFeed}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).DeleteFeed(ctx, req.(*DeleteFeedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_ProfilesList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProfilesListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).ProfilesList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodProfilesList}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).ProfilesList(ctx, req.(*ProfilesListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_ProfileInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProfileInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).ProfileInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodProfileInfo}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).ProfileInfo(ctx, req.(*ProfileInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_AddProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).AddProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodAddProfile}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).AddProfile(ctx, req.(*AddProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_DeleteProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).DeleteProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodDeleteProfile}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).DeleteProfile(ctx, req.(*DeleteProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_StartJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).StartJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodStartJob}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).StartJob(ctx, req.(*StartJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Control_StopJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).StopJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodStopJob}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ControlServer).StopJob(ctx, req.(*StopJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Control_ServiceDesc is the grpc.ServiceDesc for the Control service.
var Control_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "State", Handler: _Control_State_Handler},
		{MethodName: "FeedsList", Handler: _Control_FeedsList_Handler},
		{MethodName: "FeedInfo", Handler: _Control_FeedInfo_Handler},
		{MethodName: "AddFeed", Handler: _Control_AddFeed_Handler},
		{MethodName: "DeleteFeed", Handler: _Control_DeleteFeed_Handler},
		{MethodName: "ProfilesList", Handler: _Control_ProfilesList_Handler},
		{MethodName: "ProfileInfo", Handler: _Control_ProfileInfo_Handler},
		{MethodName: "AddProfile", Handler: _Control_AddProfile_Handler},
		{MethodName: "DeleteProfile", Handler: _Control_DeleteProfile_Handler},
		{MethodName: "StartJob", Handler: _Control_StartJob_Handler},
		{MethodName: "StopJob", Handler: _Control_StopJob_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "nostrss.proto",
}

// ControlClient is the client contract of the control plane.
type ControlClient interface {
	State(ctx context.Context, in *StateRequest, opts ...grpc.CallOption) (*StateResponse, error)
	FeedsList(ctx context.Context, in *FeedsListRequest, opts ...grpc.CallOption) (*FeedsListResponse, error)
	FeedInfo(ctx context.Context, in *FeedInfoRequest, opts ...grpc.CallOption) (*FeedInfoResponse, error)
	AddFeed(ctx context.Context, in *AddFeedRequest, opts ...grpc.CallOption) (*AddFeedResponse, error)
	DeleteFeed(ctx context.Context, in *DeleteFeedRequest, opts ...grpc.CallOption) (*DeleteFeedResponse, error)
	ProfilesList(ctx context.Context, in *ProfilesListRequest, opts ...grpc.CallOption) (*ProfilesListResponse, error)
	ProfileInfo(ctx context.Context, in *ProfileInfoRequest, opts ...grpc.CallOption) (*ProfileInfoResponse, error)
	AddProfile(ctx context.Context, in *AddProfileRequest, opts ...grpc.CallOption) (*AddProfileResponse, error)
	DeleteProfile(ctx context.Context, in *DeleteProfileRequest, opts ...grpc.CallOption) (*DeleteProfileResponse, error)
	StartJob(ctx context.Context, in *StartJobRequest, opts ...grpc.CallOption) (*StartJobResponse, error)
	StopJob(ctx context.Context, in *StopJobRequest, opts ...grpc.CallOption) (*StopJobResponse, error)
}

type controlClient struct {
	cc grpc.ClientConnInterface
}

// NewControlClient builds a client for the Control service. Dial the
// connection with grpc.CallContentSubtype(CodecName) so requests are
// framed with the registered JSON codec.
func NewControlClient(cc grpc.ClientConnInterface) ControlClient {
	return &controlClient{cc}
}

func (c *controlClient) State(ctx context.Context, in *StateRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	out := new(StateResponse)
	if err := c.cc.Invoke(ctx, MethodState, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) FeedsList(ctx context.Context, in *FeedsListRequest, opts ...grpc.CallOption) (*FeedsListResponse, error) {
	out := new(FeedsListResponse)
	if err := c.cc.Invoke(ctx, MethodFeedsList, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) FeedInfo(ctx context.Context, in *FeedInfoRequest, opts ...grpc.CallOption) (*FeedInfoResponse, error) {
	out := new(FeedInfoResponse)
	if err := c.cc.Invoke(ctx, MethodFeedInfo, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) AddFeed(ctx context.Context, in *AddFeedRequest, opts ...grpc.CallOption) (*AddFeedResponse, error) {
	out := new(AddFeedResponse)
	if err := c.cc.Invoke(ctx, MethodAddFeed, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) DeleteFeed(ctx context.Context, in *DeleteFeedRequest, opts ...grpc.CallOption) (*DeleteFeedResponse, error) {
	out := new(DeleteFeedResponse)
	if err := c.cc.Invoke(ctx, MethodDeleteFeed, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) ProfilesList(ctx context.Context, in *ProfilesListRequest, opts ...grpc.CallOption) (*ProfilesListResponse, error) {
	out := new(ProfilesListResponse)
	if err := c.cc.Invoke(ctx, MethodProfilesList, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) ProfileInfo(ctx context.Context, in *ProfileInfoRequest, opts ...grpc.CallOption) (*ProfileInfoResponse, error) {
	out := new(ProfileInfoResponse)
	if err := c.cc.Invoke(ctx, MethodProfileInfo, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) AddProfile(ctx context.Context, in *AddProfileRequest, opts ...grpc.CallOption) (*AddProfileResponse, error) {
	out := new(AddProfileResponse)
	if err := c.cc.Invoke(ctx, MethodAddProfile, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) DeleteProfile(ctx context.Context, in *DeleteProfileRequest, opts ...grpc.CallOption) (*DeleteProfileResponse, error) {
	out := new(DeleteProfileResponse)
	if err := c.cc.Invoke(ctx, MethodDeleteProfile, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) StartJob(ctx context.Context, in *StartJobRequest, opts ...grpc.CallOption) (*StartJobResponse, error) {
	out := new(StartJobResponse)
	if err := c.cc.Invoke(ctx, MethodStartJob, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *controlClient) StopJob(ctx context.Context, in *StopJobRequest, opts ...grpc.CallOption) (*StopJobResponse, error) {
	out := new(StopJobResponse)
	if err := c.cc.Invoke(ctx, MethodStopJob, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
