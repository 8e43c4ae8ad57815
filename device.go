package atshim

import "unsafe"

// CFRunLoopCommonModes is the run loop mode passed to AudioQueueNewOutput.
const CFRunLoopCommonModes CFStringRef = 0

// AudioObjectGetPropertyDataSize is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioObjectGetPropertyDataSize(inObjectID AudioObjectID, inAddress *AudioObjectPropertyAddress, inQualifierDataSize uint32, inQualifierData unsafe.Pointer, outDataSize *uint32) Status {
	return UnimplementedError
}

// AudioObjectGetPropertyData is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioObjectGetPropertyData(inObjectID AudioObjectID, inAddress *AudioObjectPropertyAddress, inQualifierDataSize uint32, inQualifierData unsafe.Pointer, ioDataSize *uint32, outData unsafe.Pointer) Status {
	return UnimplementedError
}

// AudioQueueSetProperty is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioQueueSetProperty(inAQ AudioQueueRef, inID AudioQueuePropertyID, inData unsafe.Pointer, inDataSize uint32) Status {
	return UnimplementedError
}

// AudioQueueNewOutput is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioQueueNewOutput(inFormat *AudioStreamBasicDescription, inCallbackProc AudioQueueOutputCallback, inUserData unsafe.Pointer, inCallbackRunLoop CFRunLoopRef, inCallbackRunLoopMode CFStringRef, inFlags uint32, outAQ *AudioQueueRef) Status {
	return UnimplementedError
}

// AudioQueueAllocateBuffer is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioQueueAllocateBuffer(inAQ AudioQueueRef, inBufferByteSize uint32, outBuffer *AudioQueueBufferRef) Status {
	return UnimplementedError
}

// AudioQueueEnqueueBuffer is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioQueueEnqueueBuffer(inAQ AudioQueueRef, inBuffer AudioQueueBufferRef, inNumPacketDescs uint32, inPacketDescs *AudioStreamPacketDescription) Status {
	return UnimplementedError
}

// AudioQueueStart is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioQueueStart(inAQ AudioQueueRef, inStartTime *AudioTimeStamp) Status {
	return UnimplementedError
}

// AudioQueueDispose is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioQueueDispose(inAQ AudioQueueRef, inImmediate Boolean) Status {
	return UnimplementedError
}

// AudioQueueFlush is not provided by CoreAudioToolbox. It returns
// UnimplementedError without loading the library.
func AudioQueueFlush(inAQ AudioQueueRef) Status {
	return UnimplementedError
}

// CFStringGetCStringPtr always returns nil, so callers take their copying
// fallback.
func CFStringGetCStringPtr(theString CFStringRef, encoding CFStringEncoding) *byte {
	return nil
}
