package main

// param is one argument of a forwarded entry point.
type param struct {
	Name string
	Type string
}

// entry describes one forwarded entry point. Entries are emitted in table
// order, which is also the binding order.
type entry struct {
	Name   string
	Doc    string
	Params []param
}

var table = []entry{
	{
		Name: "AudioConverterDispose",
		Doc:  "releases a converter created by AudioConverterNew.",
		Params: []param{
			{"inAudioConverter", "AudioConverterRef"},
		},
	},
	{
		Name: "AudioConverterFillComplexBuffer",
		Doc:  "converts packets supplied by inInputDataProc into outOutputData.",
		Params: []param{
			{"inAudioConverter", "AudioConverterRef"},
			{"inInputDataProc", "AudioConverterComplexInputDataProc"},
			{"inInputDataProcUserData", "unsafe.Pointer"},
			{"ioOutputDataPacketSize", "*uint32"},
			{"outOutputData", "*AudioBufferList"},
			{"outPacketDescription", "*AudioStreamPacketDescription"},
		},
	},
	{
		Name: "AudioConverterGetProperty",
		Doc:  "reads a converter property.",
		Params: []param{
			{"inAudioConverter", "AudioConverterRef"},
			{"inPropertyID", "AudioConverterPropertyID"},
			{"ioPropertyDataSize", "*uint32"},
			{"outPropertyData", "unsafe.Pointer"},
		},
	},
	{
		Name: "AudioConverterGetPropertyInfo",
		Doc:  "reports the size and writability of a converter property.",
		Params: []param{
			{"inAudioConverter", "AudioConverterRef"},
			{"inPropertyID", "AudioConverterPropertyID"},
			{"outSize", "*uint32"},
			{"outWritable", "*Boolean"},
		},
	},
	{
		Name: "AudioConverterNew",
		Doc:  "creates a converter between two stream formats.",
		Params: []param{
			{"inSourceFormat", "*AudioStreamBasicDescription"},
			{"inDestinationFormat", "*AudioStreamBasicDescription"},
			{"outAudioConverter", "*AudioConverterRef"},
		},
	},
	{
		Name: "AudioConverterReset",
		Doc:  "discards any data buffered by the converter.",
		Params: []param{
			{"inAudioConverter", "AudioConverterRef"},
		},
	},
	{
		Name: "AudioConverterSetProperty",
		Doc:  "writes a converter property.",
		Params: []param{
			{"inAudioConverter", "AudioConverterRef"},
			{"inPropertyID", "AudioConverterPropertyID"},
			{"inPropertyDataSize", "uint32"},
			{"inPropertyData", "unsafe.Pointer"},
		},
	},
	{
		Name: "AudioFormatGetPropertyInfo",
		Doc:  "reports the size of a format property.",
		Params: []param{
			{"inPropertyID", "AudioFormatPropertyID"},
			{"inSpecifierSize", "uint32"},
			{"inSpecifier", "unsafe.Pointer"},
			{"outPropertyDataSize", "*uint32"},
		},
	},
	{
		Name: "AudioFormatGetProperty",
		Doc:  "reads a format property.",
		Params: []param{
			{"inPropertyID", "AudioFormatPropertyID"},
			{"inSpecifierSize", "uint32"},
			{"inSpecifier", "unsafe.Pointer"},
			{"ioPropertyDataSize", "*uint32"},
			{"outPropertyData", "unsafe.Pointer"},
		},
	},
}
