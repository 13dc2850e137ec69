package core

import glog "github.com/goliatone/go-logger/glog"

var (
	_ ConfigProvider  = (*CfgxConfigProvider)(nil)
	_ RawConfigLoader = StaticRawConfigLoader{}
	_ OptionsResolver = GoOptionsResolver{}
	_ IDGenerator     = UUIDGenerator{}
	_ IDGenerator     = IDGeneratorFunc(nil)
	_ Sleeper         = TimerSleeper{}

	_ Logger         = glog.Nop()
	_ LoggerProvider = glog.ProviderFromLogger(glog.Nop())
)
