// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

// vkmetal.go is the macOS Vulkan backend, bridged to Cocoa through
// VK_EXT_metal_surface exactly as the teacher's render/vulkan_apple.go
// does for its 3D renderer, but pointed at the CAMetalLayer
// package videosurface installs (videosurface.MetalSurface.Layer())
// rather than the window's own content layer. The instance/device/
// swapchain bring-up mirrors render/vulkan.go's createInstance/
// selectPhysicalDevice/createLogicalDevice/createSwapchainResources
// sequence, trimmed to what a single full-screen textured quad needs —
// no mesh, material or shader-library machinery, since this package
// only ever draws the UI compositor's one quad per frame.
package gpucontext

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/jellyfin/jellyfin-desktop-go/compositor"
	"github.com/jellyfin/jellyfin-desktop-go/internal/render/vk"
)

const maxFramesInFlight = 2

// vkImage is a GPU image plus its backing memory and view, the same
// bookkeeping shape as the teacher's vulkanImage in render/vulkan.go.
type vkImage struct {
	handle vk.Image
	memory vk.DeviceMemory
	view   vk.ImageView
	width  uint32
	height uint32
}

type vkFrame struct {
	imageAvailable vk.Semaphore
	renderFinished vk.Semaphore
	inFlightFence  vk.Fence
	cmds           vk.CommandBuffer
}

// VKMetal is the Vulkan context presenting to a CAMetalLayer.
type VKMetal struct {
	instance       vk.Instance
	surface        vk.SurfaceKHR
	physicalDevice vk.PhysicalDevice
	device         vk.Device
	graphicsQ      vk.Queue
	presentQ       vk.Queue
	cmdPool        vk.CommandPool

	swapchain  vk.SwapchainKHR
	surfaceFmt vk.SurfaceFormatKHR
	images     []vk.Image
	views      []vk.ImageView
	imageIndex uint32

	frames     [maxFramesInFlight]vkFrame
	frameIndex uint32

	width, height int

	textures map[uintptr]*vkImage
	nextID   uintptr

	// fullscreen-triangle pipeline state, shared across every texture
	// this context draws (spec section 4.C: one UI layer, one overlay
	// layer, one video layer, each a single textured quad).
	sampler             vk.Sampler
	descriptorSetLayout vk.DescriptorSetLayout
	descriptorPool      vk.DescriptorPool
	pipelineLayout      vk.PipelineLayout
	pipeline            vk.Pipeline
	imageDescriptors    map[vk.ImageView]vk.DescriptorSet
}

var (
	_ Context                 = (*VKMetal)(nil)
	_ compositor.GPUImageHost = (*VKMetal)(nil)
)

// NewVKMetal creates a Vulkan instance, device and swapchain presenting
// to metalLayer, an unsafe CAMetalLayer pointer from
// videosurface.MetalSurface.Layer().
func NewVKMetal(metalLayer unsafe.Pointer, w, h int) (*VKMetal, error) {
	vm := &VKMetal{
		width: w, height: h,
		textures:         make(map[uintptr]*vkImage),
		imageDescriptors: make(map[vk.ImageView]vk.DescriptorSet),
	}

	instInfo := &vk.InstanceCreateInfo{
		EnabledExtensionNames: []string{
			vk.KHR_SURFACE_EXTENSION_NAME,
			vk.EXT_METAL_SURFACE_EXTENSION_NAME,
		},
	}
	var err error
	vm.instance, err = vk.CreateInstance(instInfo, nil)
	if err != nil {
		return nil, errBackendUnavailable(VKMetal, fmt.Sprintf("vk.CreateInstance: %v", err))
	}

	vm.surface, err = vk.CreateMetalSurfaceEXT(vm.instance, &vk.MetalSurfaceCreateInfoEXT{
		PLayer: (*vk.CAMetalLayer)(metalLayer),
	}, nil)
	if err != nil {
		return nil, errBackendUnavailable(VKMetal, fmt.Sprintf("vk.CreateMetalSurfaceEXT: %v", err))
	}

	if err := vm.selectPhysicalDevice(); err != nil {
		return nil, err
	}
	if err := vm.createLogicalDevice(); err != nil {
		return nil, err
	}
	if err := vm.createSwapchain(); err != nil {
		return nil, err
	}
	if err := vm.createFrames(); err != nil {
		return nil, err
	}
	if err := vm.createPipeline(); err != nil {
		return nil, err
	}
	slog.Info("vulkan-metal context initialized", "width", w, "height", h)
	return vm, nil
}

func (vm *VKMetal) selectPhysicalDevice() error {
	devices, err := vk.EnumeratePhysicalDevices(vm.instance)
	if err != nil || len(devices) == 0 {
		return errBackendUnavailable(VKMetal, "no Vulkan-capable physical device")
	}
	vm.physicalDevice = devices[0]
	return nil
}

func (vm *VKMetal) createLogicalDevice() error {
	devInfo := &vk.DeviceCreateInfo{
		EnabledExtensionNames: []string{vk.KHR_SWAPCHAIN_EXTENSION_NAME},
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{
			{QueueFamilyIndex: 0, QueuePriorities: []float32{1.0}},
		},
	}
	var err error
	vm.device, err = vk.CreateDevice(vm.physicalDevice, devInfo, nil)
	if err != nil {
		return errBackendUnavailable(VKMetal, fmt.Sprintf("vk.CreateDevice: %v", err))
	}
	vm.graphicsQ = vk.GetDeviceQueue(vm.device, 0, 0)
	vm.presentQ = vm.graphicsQ
	vm.cmdPool, err = vk.CreateCommandPool(vm.device, &vk.CommandPoolCreateInfo{
		QueueFamilyIndex: 0,
		Flags:            vk.COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT,
	}, nil)
	return err
}

func (vm *VKMetal) createSwapchain() error {
	vm.surfaceFmt = vk.SurfaceFormatKHR{Format: vk.FORMAT_B8G8R8A8_UNORM, ColorSpace: vk.COLOR_SPACE_SRGB_NONLINEAR_KHR}
	sc, err := vk.CreateSwapchainKHR(vm.device, &vk.SwapchainCreateInfoKHR{
		Surface:          vm.surface,
		MinImageCount:    maxFramesInFlight + 1,
		ImageFormat:      vm.surfaceFmt.Format,
		ImageColorSpace:  vm.surfaceFmt.ColorSpace,
		ImageExtent:      vk.Extent2D{Width: uint32(vm.width), Height: uint32(vm.height)},
		ImageArrayLayers: 1,
		ImageUsage:       vk.IMAGE_USAGE_COLOR_ATTACHMENT_BIT,
		PresentMode:      vk.PRESENT_MODE_FIFO_KHR,
	}, nil)
	if err != nil {
		return fmt.Errorf("vk.CreateSwapchainKHR: %w", err)
	}
	vm.swapchain = sc
	vm.images, err = vk.GetSwapchainImagesKHR(vm.device, vm.swapchain)
	if err != nil {
		return err
	}
	vm.views = make([]vk.ImageView, len(vm.images))
	for i, img := range vm.images {
		vm.views[i], err = vk.CreateImageView(vm.device, &vk.ImageViewCreateInfo{
			Image: img, ViewType: vk.IMAGE_VIEW_TYPE_2D, Format: vm.surfaceFmt.Format,
			SubresourceRange: vk.ImageSubresourceRange{AspectMask: vk.IMAGE_ASPECT_COLOR_BIT, LevelCount: 1, LayerCount: 1},
		}, nil)
		if err != nil {
			return err
		}
	}
	return nil
}

func (vm *VKMetal) createFrames() error {
	for i := range vm.frames {
		var err error
		vm.frames[i].imageAvailable, err = vk.CreateSemaphore(vm.device, &vk.SemaphoreCreateInfo{}, nil)
		if err != nil {
			return err
		}
		vm.frames[i].renderFinished, err = vk.CreateSemaphore(vm.device, &vk.SemaphoreCreateInfo{}, nil)
		if err != nil {
			return err
		}
		vm.frames[i].inFlightFence, err = vk.CreateFence(vm.device, &vk.FenceCreateInfo{Flags: vk.FENCE_CREATE_SIGNALED_BIT}, nil)
		if err != nil {
			return err
		}
		bufs, err := vk.AllocateCommandBuffers(vm.device, &vk.CommandBufferAllocateInfo{
			CommandPool: vm.cmdPool, Level: vk.COMMAND_BUFFER_LEVEL_PRIMARY, CommandBufferCount: 1,
		})
		if err != nil {
			return err
		}
		vm.frames[i].cmds = bufs[0]
	}
	return nil
}

// MakeCurrent is a no-op on Vulkan: queues aren't thread-affine.
func (vm *VKMetal) MakeCurrent() error { return nil }

// Present acquires the next swapchain image, submits whatever the
// frame loop already recorded, and presents it — recreating the
// swapchain transparently on out-of-date/suboptimal, per spec section
// 4.A failure semantics.
func (vm *VKMetal) Present() error {
	frame := &vm.frames[vm.frameIndex]
	if err := vk.WaitForFences(vm.device, []vk.Fence{frame.inFlightFence}, true, ^uint64(0)); err != nil {
		return fmt.Errorf("vk.WaitForFences: %w", err)
	}

	idx, err := vk.AcquireNextImageKHR(vm.device, vm.swapchain, ^uint64(0), frame.imageAvailable, 0)
	if err == vk.SUBOPTIMAL_KHR || err == vk.ERROR_OUT_OF_DATE_KHR {
		return vm.Resize(vm.width, vm.height)
	} else if err != nil {
		return fmt.Errorf("vk.AcquireNextImageKHR: %w", err)
	}
	vm.imageIndex = idx

	vk.ResetFences(vm.device, []vk.Fence{frame.inFlightFence})
	if err := vk.QueueSubmit(vm.graphicsQ, []vk.SubmitInfo{{
		WaitSemaphores:   []vk.Semaphore{frame.imageAvailable},
		CommandBuffers:   []vk.CommandBuffer{frame.cmds},
		SignalSemaphores: []vk.Semaphore{frame.renderFinished},
	}}, frame.inFlightFence); err != nil {
		return fmt.Errorf("vk.QueueSubmit: %w", err)
	}

	presentErr := vk.QueuePresentKHR(vm.presentQ, &vk.PresentInfoKHR{
		WaitSemaphores: []vk.Semaphore{frame.renderFinished},
		Swapchains:     []vk.SwapchainKHR{vm.swapchain},
		ImageIndices:   []uint32{vm.imageIndex},
	})
	if presentErr == vk.SUBOPTIMAL_KHR || presentErr == vk.ERROR_OUT_OF_DATE_KHR {
		return vm.Resize(vm.width, vm.height)
	} else if presentErr != nil {
		return fmt.Errorf("vk.QueuePresentKHR: %w", presentErr)
	}
	vm.frameIndex = (vm.frameIndex + 1) % maxFramesInFlight
	return nil
}

// Resize waits for the device to go idle, destroys the swapchain, and
// recreates it at the new size (spec section 4.A).
func (vm *VKMetal) Resize(w, h int) error {
	if err := vk.DeviceWaitIdle(vm.device); err != nil {
		return err
	}
	for _, v := range vm.views {
		vk.DestroyImageView(vm.device, v, nil)
	}
	vk.DestroySwapchainKHR(vm.device, vm.swapchain, nil)
	vm.width, vm.height = w, h
	return vm.createSwapchain()
}

// PhysicalSize implements Context.
func (vm *VKMetal) PhysicalSize() (w, h int) { return vm.width, vm.height }

// SharedContext returns a context wrapping the same device and queues
// for use by a dedicated video-render thread (spec section 4.A: Vulkan
// always supports this).
func (vm *VKMetal) SharedContext() (Context, error) {
	return &vkSharedContext{parent: vm}, nil
}

// GetProcAddress has no meaning on Vulkan; mpv's Vulkan render API
// (mpv_player_vk.cpp) is driven through shared handles, not GL function
// pointers.
func (vm *VKMetal) GetProcAddress(name string) uintptr { return 0 }

// Close releases the swapchain, device and instance in reverse order of
// acquisition.
func (vm *VKMetal) Close() error {
	vk.DeviceWaitIdle(vm.device)
	vk.DestroyPipeline(vm.device, vm.pipeline, nil)
	vk.DestroyPipelineLayout(vm.device, vm.pipelineLayout, nil)
	vk.DestroyDescriptorPool(vm.device, vm.descriptorPool, nil)
	vk.DestroyDescriptorSetLayout(vm.device, vm.descriptorSetLayout, nil)
	vk.DestroySampler(vm.device, vm.sampler, nil)
	for _, v := range vm.views {
		vk.DestroyImageView(vm.device, v, nil)
	}
	vk.DestroySwapchainKHR(vm.device, vm.swapchain, nil)
	vk.DestroyCommandPool(vm.device, vm.cmdPool, nil)
	vk.DestroyDevice(vm.device, nil)
	vk.DestroySurfaceKHR(vm.instance, vm.surface, nil)
	vk.DestroyInstance(vm.instance, nil)
	return nil
}

// vkSharedContext is a thin handle onto VKMetal's device/queues for use
// on a second thread; Vulkan queues from the same device are usable
// concurrently given external synchronization, which the frame loop
// already provides via its own command submission serialization.
type vkSharedContext struct{ parent *VKMetal }

func (s *vkSharedContext) MakeCurrent() error                { return nil }
func (s *vkSharedContext) Present() error                    { return s.parent.Present() }
func (s *vkSharedContext) Resize(w, h int) error              { return s.parent.Resize(w, h) }
func (s *vkSharedContext) PhysicalSize() (w, h int)           { return s.parent.PhysicalSize() }
func (s *vkSharedContext) SharedContext() (Context, error)    { return s.parent.SharedContext() }
func (s *vkSharedContext) GetProcAddress(name string) uintptr { return 0 }
func (s *vkSharedContext) Close() error                       { return nil }
