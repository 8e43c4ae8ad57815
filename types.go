package atshim

import "unsafe"

// Boolean is the library's one-byte boolean.
type Boolean = uint8

// Opaque references owned by the library.
type (
	AudioConverterRef uintptr
	AudioQueueRef     uintptr
	CFStringRef       uintptr
	CFRunLoopRef      uintptr
)

type (
	AudioFormatID            uint32
	AudioFormatFlags         uint32
	AudioFormatPropertyID    uint32
	AudioConverterPropertyID uint32
	AudioChannelLabel        uint32
	AudioChannelLayoutTag    uint32
	AudioChannelBitmap       uint32
	AudioChannelFlags        uint32
	AudioObjectID            uint32
	AudioQueuePropertyID     uint32
	AudioTimeStampFlags      uint32
	CFStringEncoding         uint32

	AudioObjectPropertySelector uint32
	AudioObjectPropertyScope    uint32
	AudioObjectPropertyElement  uint32
)

// AudioConverterComplexInputDataProc is the address of a C-callable input
// callback. See NewComplexInputDataProc.
type AudioConverterComplexInputDataProc uintptr

// AudioQueueOutputCallback is the address of a C-callable queue callback.
type AudioQueueOutputCallback uintptr

// AudioStreamBasicDescription describes a stream's format.
type AudioStreamBasicDescription struct {
	SampleRate       float64
	FormatID         AudioFormatID
	FormatFlags      AudioFormatFlags
	BytesPerPacket   uint32
	FramesPerPacket  uint32
	BytesPerFrame    uint32
	ChannelsPerFrame uint32
	BitsPerChannel   uint32
	Reserved         uint32
}

// AudioStreamPacketDescription locates one packet in a buffer.
type AudioStreamPacketDescription struct {
	StartOffset            int64
	VariableFramesInPacket uint32
	DataByteSize           uint32
}

type AudioChannelDescription struct {
	ChannelLabel AudioChannelLabel
	ChannelFlags AudioChannelFlags
	Coordinates  [3]float32
}

// AudioChannelLayout is variable length; ChannelDescriptions holds
// NumberChannelDescriptions entries in memory allocated by the caller.
type AudioChannelLayout struct {
	ChannelLayoutTag          AudioChannelLayoutTag
	ChannelBitmap             AudioChannelBitmap
	NumberChannelDescriptions uint32
	ChannelDescriptions       [1]AudioChannelDescription
}

type AudioBuffer struct {
	NumberChannels uint32
	DataByteSize   uint32
	Data           unsafe.Pointer
}

// AudioBufferList is variable length; Buffers holds NumberBuffers entries
// in memory allocated by the caller.
type AudioBufferList struct {
	NumberBuffers uint32
	Buffers       [1]AudioBuffer
}

type AudioValueRange struct {
	Minimum float64
	Maximum float64
}

type AudioConverterPrimeInfo struct {
	LeadingFrames  uint32
	TrailingFrames uint32
}

type AudioObjectPropertyAddress struct {
	Selector AudioObjectPropertySelector
	Scope    AudioObjectPropertyScope
	Element  AudioObjectPropertyElement
}

type SMPTETime struct {
	Subframes       int16
	SubframeDivisor int16
	Counter         uint32
	Type            uint32
	Flags           uint32
	Hours           int16
	Minutes         int16
	Seconds         int16
	Frames          int16
}

type AudioTimeStamp struct {
	SampleTime    float64
	HostTime      uint64
	RateScalar    float64
	WordClockTime uint64
	SMPTETime     SMPTETime
	Flags         AudioTimeStampFlags
	Reserved      uint32
}

type AudioQueueBuffer struct {
	AudioDataBytesCapacity    uint32
	AudioData                 unsafe.Pointer
	AudioDataByteSize         uint32
	UserData                  unsafe.Pointer
	PacketDescriptionCapacity uint32
	PacketDescriptions        *AudioStreamPacketDescription
	PacketDescriptionCount    uint32
}

type AudioQueueBufferRef = *AudioQueueBuffer

// ComplexInputDataFunc supplies input packets to the converter. It sets
// *ioNumberDataPackets to the number of packets provided and points ioData
// at them; returning a non-zero status stops the conversion.
type ComplexInputDataFunc func(converter AudioConverterRef, ioNumberDataPackets *uint32, ioData *AudioBufferList, outDataPacketDescription **AudioStreamPacketDescription, userData unsafe.Pointer) Status
