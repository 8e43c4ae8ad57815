package atshim

// Code values below are big-endian four-character codes.

// Stream formats.
const (
	AudioFormatLinearPCM      AudioFormatID = 0x6c70636d // 'lpcm'
	AudioFormatAC3            AudioFormatID = 0x61632d33 // 'ac-3'
	AudioFormatQDesign        AudioFormatID = 0x51444d43 // 'QDMC'
	AudioFormatQDesign2       AudioFormatID = 0x51444d32 // 'QDM2'
	AudioFormatMPEGLayer1     AudioFormatID = 0x2e6d7031 // '.mp1'
	AudioFormatMPEGLayer2     AudioFormatID = 0x2e6d7032 // '.mp2'
	AudioFormatMPEGLayer3     AudioFormatID = 0x2e6d7033 // '.mp3'
	AudioFormatAMR            AudioFormatID = 0x73616d72 // 'samr'
	AudioFormatEnhancedAC3    AudioFormatID = 0x65632d33 // 'ec-3'
	AudioFormatMPEG4AAC       AudioFormatID = 0x61616320 // 'aac '
	AudioFormatMPEG4AAC_LD    AudioFormatID = 0x6161636c // 'aacl'
	AudioFormatMPEG4AAC_HE    AudioFormatID = 0x61616368 // 'aach'
	AudioFormatMPEG4AAC_HE_V2 AudioFormatID = 0x61616370 // 'aacp'
	AudioFormatAppleIMA4      AudioFormatID = 0x696d6134 // 'ima4'
	AudioFormatULaw           AudioFormatID = 0x756c6177 // 'ulaw'
	AudioFormatALaw           AudioFormatID = 0x616c6177 // 'alaw'
	AudioFormatAppleLossless  AudioFormatID = 0x616c6163 // 'alac'
)

// Converter properties.
const (
	AudioConverterDecompressionMagicCookie        AudioConverterPropertyID = 0x646d6763 // 'dmgc'
	AudioConverterCurrentOutputStreamDescription  AudioConverterPropertyID = 0x61636f64 // 'acod'
	AudioConverterOutputChannelLayout             AudioConverterPropertyID = 0x6f636c20 // 'ocl '
	AudioConverterPropertyPrimeInfo               AudioConverterPropertyID = 0x7072696d // 'prim'
	AudioConverterCurrentInputStreamDescription   AudioConverterPropertyID = 0x61636964 // 'acid'
	AudioConverterPropertyMaximumOutputPacketSize AudioConverterPropertyID = 0x786f7073 // 'xops'
	AudioConverterPropertyBitDepthHint            AudioConverterPropertyID = 0x61636264 // 'acbd'
	AudioConverterCompressionMagicCookie          AudioConverterPropertyID = 0x636d6763 // 'cmgc'
	AudioConverterCodecQuality                    AudioConverterPropertyID = 0x63647175 // 'cdqu'
	AudioConverterEncodeBitRate                   AudioConverterPropertyID = 0x62726174 // 'brat'
	AudioConverterInputChannelLayout              AudioConverterPropertyID = 0x69636c20 // 'icl '
	AudioConverterApplicableEncodeBitRates        AudioConverterPropertyID = 0x61656272 // 'aebr'
	AudioCodecPropertyBitRateControlMode          AudioConverterPropertyID = 0x61636266 // 'acbf'
	AudioCodecPropertySoundQualityForVBR          AudioConverterPropertyID = 0x76627271 // 'vbrq'
)

// Format services properties.
const (
	AudioFormatPropertyFormatInfo             AudioFormatPropertyID = 0x666d7469 // 'fmti'
	AudioFormatPropertyChannelLayoutForBitmap AudioFormatPropertyID = 0x636d7062 // 'cmpb'
	AudioFormatPropertyChannelLayoutForTag    AudioFormatPropertyID = 0x636d706c // 'cmpl'
)

// Format flags.
const (
	AudioFormatFlagIsFloat          AudioFormatFlags = 1 << 0
	AudioFormatFlagIsBigEndian      AudioFormatFlags = 1 << 1
	AudioFormatFlagIsSignedInteger  AudioFormatFlags = 1 << 2
	AudioFormatFlagIsPacked         AudioFormatFlags = 1 << 3
	AudioFormatFlagIsNonInterleaved AudioFormatFlags = 1 << 5

	LinearPCMFormatFlagIsFloat         = AudioFormatFlagIsFloat
	LinearPCMFormatFlagIsSignedInteger = AudioFormatFlagIsSignedInteger
)

// Channel labels.
const (
	AudioChannelLabelLFEScreen           AudioChannelLabel = 4
	AudioChannelLabelRightSurround       AudioChannelLabel = 6
	AudioChannelLabelCenterSurround      AudioChannelLabel = 9
	AudioChannelLabelRightSurroundDirect AudioChannelLabel = 11
	AudioChannelLabelTopBackRight        AudioChannelLabel = 18
	AudioChannelLabelRearSurroundLeft    AudioChannelLabel = 33
	AudioChannelLabelRearSurroundRight   AudioChannelLabel = 34
	AudioChannelLabelRightWide           AudioChannelLabel = 36
	AudioChannelLabelLFE2                AudioChannelLabel = 37
	AudioChannelLabelMono                AudioChannelLabel = 42
)

// Channel layout tags.
const (
	AudioChannelLayoutTagUseChannelDescriptions AudioChannelLayoutTag = 0 << 16
	AudioChannelLayoutTagUseChannelBitmap       AudioChannelLayoutTag = 1 << 16
	AudioChannelLayoutTagMono                   AudioChannelLayoutTag = 100<<16 | 1
	AudioChannelLayoutTagStereo                 AudioChannelLayoutTag = 101<<16 | 2
	AudioChannelLayoutTagMPEG_7_1_C             AudioChannelLayoutTag = 128<<16 | 8
	AudioChannelLayoutTagAAC_6_0                AudioChannelLayoutTag = 141<<16 | 6
	AudioChannelLayoutTagAAC_6_1                AudioChannelLayoutTag = 142<<16 | 7
	AudioChannelLayoutTagAAC_7_0                AudioChannelLayoutTag = 143<<16 | 7
	AudioChannelLayoutTagAAC_7_1                AudioChannelLayoutTag = 127<<16 | 8
	AudioChannelLayoutTagAAC_Octagonal          AudioChannelLayoutTag = 144<<16 | 8
	AudioChannelLayoutTagAAC_Quadraphonic       AudioChannelLayoutTag = 108<<16 | 4
	AudioChannelLayoutTagAAC_3_0                AudioChannelLayoutTag = 114<<16 | 3
	AudioChannelLayoutTagAAC_4_0                AudioChannelLayoutTag = 116<<16 | 4
	AudioChannelLayoutTagAAC_5_0                AudioChannelLayoutTag = 120<<16 | 5
	AudioChannelLayoutTagAAC_5_1                AudioChannelLayoutTag = 124<<16 | 6
)

// Bit rate control modes for AudioCodecPropertyBitRateControlMode.
const (
	AudioCodecBitRateControlModeConstant            uint32 = 0
	AudioCodecBitRateControlModeLongTermAverage     uint32 = 1
	AudioCodecBitRateControlModeVariableConstrained uint32 = 2
	AudioCodecBitRateControlModeVariable            uint32 = 3
)

// Device and queue selectors. The entry points taking them are not
// provided by the library and report UnimplementedError.
const (
	AudioHardwarePropertyDevices          AudioObjectPropertySelector = 0x64657623 // 'dev#'
	AudioObjectSystemObject               AudioObjectID               = 1
	AudioObjectPropertyElementMaster      AudioObjectPropertyElement  = 0
	AudioObjectPropertyScopeGlobal        AudioObjectPropertyScope    = 0x676c6f62 // 'glob'
	AudioDevicePropertyScopeInput         AudioObjectPropertyScope    = 0x696e7074 // 'inpt'
	AudioDevicePropertyDeviceUID          AudioObjectPropertySelector = 0x75696420 // 'uid '
	AudioDevicePropertyDeviceNameCFString AudioObjectPropertySelector = 0x6c6e616d // 'lnam'
	AudioQueuePropertyCurrentDevice       AudioQueuePropertyID        = 0x61716364 // 'aqcd'
	CFStringEncodingMacRoman              CFStringEncoding            = 0
)
